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
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegister() Register {
	return Register{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@nexabank.test",
		Phone:     "08012345678",
		BVN:       "12345678901",
		Password:  "s3cret-pass",
		PIN:       "1234",
	}
}

func TestValidateRegister(t *testing.T) {
	r := validRegister()
	assert.NoError(t, r.ValidateRegister())

	r = validRegister()
	r.Email = "not-an-email"
	assert.Error(t, r.ValidateRegister())

	r = validRegister()
	r.Phone = "0801234"
	assert.Error(t, r.ValidateRegister())

	r = validRegister()
	r.Password = "short"
	assert.Error(t, r.ValidateRegister())

	r = validRegister()
	r.PIN = "12ab"
	assert.Error(t, r.ValidateRegister())
}

func TestValidateTransfer(t *testing.T) {
	tr := Transfer{AccountNumber: "9876543210", BankCode: "044", Amount: 5000, PIN: "1234"}
	assert.NoError(t, tr.ValidateTransfer())

	tr.AccountNumber = "98765"
	assert.Error(t, tr.ValidateTransfer())

	tr = Transfer{AccountNumber: "9876543210", BankCode: "044", PIN: "1234"}
	assert.Error(t, tr.ValidateTransfer())
}

func TestValidateBuyAirtime(t *testing.T) {
	b := BuyAirtime{Provider: "mtn", Phone: "08031112222", Amount: 100, PIN: "1234"}
	assert.NoError(t, b.ValidateBuyAirtime())

	b.Phone = "123"
	assert.Error(t, b.ValidateBuyAirtime())
}

func TestValidatePayBill(t *testing.T) {
	p := PayBill{BillType: "data", Provider: "mtn", Plan: "mtn-1gb", Phone: "08031112222", PIN: "1234"}
	assert.NoError(t, p.ValidatePayBill())

	p = PayBill{BillType: "data", Provider: "mtn", Phone: "08031112222", PIN: "1234"}
	assert.Error(t, p.ValidatePayBill(), "data bills require a plan")

	p = PayBill{BillType: "electricity", Provider: "ikedc", Amount: 5000, PIN: "1234"}
	assert.Error(t, p.ValidatePayBill(), "electricity bills require a meter number")

	p = PayBill{BillType: "electricity", Provider: "ikedc", MeterNumber: "45021198765", Amount: 5000, PIN: "1234"}
	assert.NoError(t, p.ValidatePayBill())

	p = PayBill{BillType: "water", Provider: "ikedc", Amount: 5000, PIN: "1234"}
	assert.Error(t, p.ValidatePayBill())
}

func TestValidateResetPassword(t *testing.T) {
	r := ResetPassword{Email: "ada@nexabank.test", OTP: "123456", NewPassword: "new-pass-9"}
	assert.NoError(t, r.ValidateResetPassword())

	r.OTP = "12345"
	assert.Error(t, r.ValidateResetPassword())
}

func TestValidateUpdateProfile(t *testing.T) {
	u := UpdateProfile{}
	assert.NoError(t, u.ValidateUpdateProfile(), "all fields optional")

	u = UpdateProfile{Email: "bad"}
	assert.Error(t, u.ValidateUpdateProfile())
}
