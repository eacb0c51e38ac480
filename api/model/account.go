package model

// Register is the payload for opening a new account.
type Register struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BVN       string `json:"bvn"`
	Password  string `json:"password"`
	PIN       string `json:"pin"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPassword struct {
	Email string `json:"email"`
}

type ResetPassword struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type ResetPIN struct {
	Password string `json:"password"`
	NewPIN   string `json:"new_pin"`
}

// UpdateProfile carries only the fields being changed; empty fields keep
// their current value.
type UpdateProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
