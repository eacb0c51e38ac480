/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package model

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jerry-enebeli/nexabank/catalog"
)

var (
	emailRule   = validation.Match(regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)).Error("must be a valid email address")
	phoneRule   = validation.Match(regexp.MustCompile(`^\d{11}$`)).Error("must be 11 digits")
	bvnRule     = validation.Match(regexp.MustCompile(`^\d{11}$`)).Error("must be 11 digits")
	pinRule     = validation.Match(regexp.MustCompile(`^\d{4}$`)).Error("must be 4 digits")
	otpRule     = validation.Match(regexp.MustCompile(`^\d{6}$`)).Error("must be 6 digits")
	accountRule = validation.Match(regexp.MustCompile(`^\d{10}$`)).Error("must be 10 digits")
)

func (r *Register) ValidateRegister() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, emailRule),
		validation.Field(&r.Phone, validation.Required, phoneRule),
		validation.Field(&r.BVN, validation.Required, bvnRule),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&r.PIN, validation.Required, pinRule),
	)
}

func (l *Login) ValidateLogin() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Email, validation.Required, emailRule),
		validation.Field(&l.Password, validation.Required),
	)
}

func (f *ForgotPassword) ValidateForgotPassword() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Email, validation.Required, emailRule),
	)
}

func (r *ResetPassword) ValidateResetPassword() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, emailRule),
		validation.Field(&r.OTP, validation.Required, otpRule),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 0)),
	)
}

func (r *ResetPIN) ValidateResetPIN() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.NewPIN, validation.Required, pinRule),
	)
}

func (u *UpdateProfile) ValidateUpdateProfile() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email, validation.When(u.Email != "", emailRule)),
		validation.Field(&u.Phone, validation.When(u.Phone != "", phoneRule)),
	)
}

func (t *Transfer) ValidateTransfer() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.AccountNumber, validation.Required, accountRule),
		validation.Field(&t.BankCode, validation.Required),
		validation.Field(&t.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&t.PIN, validation.Required, pinRule),
	)
}

func (b *BuyAirtime) ValidateBuyAirtime() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Provider, validation.Required),
		validation.Field(&b.Phone, validation.Required, phoneRule),
		validation.Field(&b.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&b.PIN, validation.Required, pinRule),
	)
}

func (p *PayBill) ValidatePayBill() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.BillType, validation.Required, validation.By(func(value interface{}) error {
			kind, ok := value.(string)
			if !ok {
				return errors.New("invalid bill type")
			}
			if _, found := catalog.BillKind(kind); !found {
				return errors.New("unknown bill type")
			}
			return nil
		})),
		validation.Field(&p.Provider, validation.Required),
		validation.Field(&p.Plan, validation.When(p.BillType == catalog.BillKindData, validation.Required)),
		validation.Field(&p.Phone, validation.When(p.BillType == catalog.BillKindData, validation.Required, phoneRule)),
		validation.Field(&p.MeterNumber, validation.When(
			p.BillType == catalog.BillKindElectricity || p.BillType == catalog.BillKindCable, validation.Required)),
		validation.Field(&p.Amount, validation.When(p.BillType != catalog.BillKindData, validation.Required, validation.Min(0.01))),
		validation.Field(&p.PIN, validation.Required, pinRule),
	)
}
