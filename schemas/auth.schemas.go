package schemas

// RegisterSchema struct
type RegisterSchema struct {
	Name                    string `validate:"required,max=100"`
	Email                   string `validate:"required,email,max=1000"`
	Password                string `validate:"required,min=8"`
	PasswordConfirm         string `validate:"required,eqfield=Password"`
	Title                   string
	ProgrammingLanguages    []string
	Frameworks              []string
	Libraries               []string
	Hobbies                 []string
	ParticipatedInHackathon bool
}

// LoginSchema struct
type LoginSchema struct {
	Email    string `validate:"required,email,max=1000"`
	Password string `validate:"required"`
}

// ForgotPasswordSchema struct
type ForgotPasswordSchema struct {
	Email string `validate:"required,email,max=1000"`
}

// ResetPasswordSchema struct
type ResetPasswordSchema struct {
	OldPassword     string `validate:"required"`
	NewPassword     string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// SendOTPSchema struct
type SendOTPSchema struct {
	PhoneNumber string `validate:"required,e164"`
}

// VerifyOTPSchema struct
type VerifyOTPSchema struct {
	PhoneNumber string `validate:"required,e164"`
	OTP         string `validate:"required,len=6"`
}

// RefreshTokenSchema struct
type RefreshTokenSchema struct {
	Token    string
	ExpireAt int64
}

// TokensSchema struct
type TokensSchema struct {
	RefreshToken RefreshTokenSchema
	AccessToken  string
}
