package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a bill was settled
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = 0
	PaymentMethodCard PaymentMethod = 1
	PaymentMethodUPI  PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	return [...]string{"Cash", "Card", "UPI"}[m]
}

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodUPI
}

// ParsePaymentMethod parses the wire form ("Cash", "Card", "UPI").
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "Cash", "cash":
		return PaymentMethodCash, nil
	case "Card", "card":
		return PaymentMethodCard, nil
	case "UPI", "upi", "Upi":
		return PaymentMethodUPI, nil
	}
	return PaymentMethodCash, fmt.Errorf("unknown payment method %q", s)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentMethod", value)
	}
	return nil
}
