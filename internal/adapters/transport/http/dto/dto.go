package dto

type RegisterDTO struct {
	Email    string `json:"email"     validate:"required,email"`
	Username string `json:"username"  validate:"required,alphanum,min=3,max=30"`
	FullName string `json:"full_name" validate:"max=100"`
	Password string `json:"password"  validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ValidateDTO struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// UserView is the public projection of an account. It never carries the
// password hash.
type UserView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type TokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	User         UserView `json:"user"`
}

type CreateStrategyDTO struct {
	Name            string      `json:"name" binding:"required,max=100"`
	Description     string      `json:"description"`
	EntryConditions interface{} `json:"entry_conditions"`
	ExitConditions  interface{} `json:"exit_conditions"`
	PositionSizing  interface{} `json:"position_sizing"`
}
