package payment

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Method is how a delivery gets paid for.
type Method int

const (
	MethodUnknown Method = iota
	MethodCash
	MethodCard
	MethodBankTransfer
	MethodMobileMoney
	MethodWallet
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodCash:         "cash",
		MethodCard:         "card",
		MethodBankTransfer: "bank_transfer",
		MethodMobileMoney:  "mobile_money",
		MethodWallet:       "wallet",
	}
}

// MethodFromString parses the wire representation of a payment method.
func MethodFromString(s string) (Method, error) {
	for m, str := range getMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a recognized payment method", s))
}

func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
