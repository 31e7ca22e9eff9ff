package auth

// MinPasswordLength mirrors the provider's minimum so obviously
// rejectable passwords never reach the network.
const MinPasswordLength = 6

// ValidateRegistration checks registration input locally. A non-nil
// result is always a *ValidationError and means no provider call should
// be made.
func ValidateRegistration(email, password, confirm string) error {
	if email == "" || password == "" || confirm == "" {
		return &ValidationError{Message: "please fill in all fields"}
	}
	if password != confirm {
		return &ValidationError{Message: "passwords do not match"}
	}
	if len(password) < MinPasswordLength {
		return &ValidationError{Message: "password must be at least 6 characters long"}
	}
	return nil
}

// ValidateLogin checks login input locally.
func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return &ValidationError{Message: "please enter both email and password"}
	}
	return nil
}
