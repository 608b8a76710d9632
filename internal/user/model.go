package user

import "time"

type Role string

const (
	RoleUser    Role = "user"
	RoleCaterer Role = "caterer"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleCaterer
}

// CatererProfile holds the seller-only fields. It is present on an
// Account exactly when the role is caterer, instead of one flat record
// with conditionally-required columns.
type CatererProfile struct {
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
}

type Account struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Phone        string          `json:"phone"`
	PasswordHash string          `json:"-"`
	Role         Role            `json:"role"`
	Caterer      *CatererProfile `json:"caterer,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type RegisterParams struct {
	Username        string
	Phone           string
	Password        string
	Role            Role
	BusinessName    string
	BusinessAddress string
}
