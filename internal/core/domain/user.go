package domain

// Role names are fixed at bootstrap but modeled as open data: roles live in
// the database and accounts reference them by id.
const (
	RoleAdministrator = "Administrator"
	RoleOperator      = "Operator"
	RoleViewer        = "Viewer"
)

// Role groups users for authorization purposes.
type Role struct {
	ID    string `json:"id" gorm:"primaryKey;size:10"`
	Name  string `json:"name" gorm:"size:50;not null"`
	Users []User `json:"-" gorm:"foreignKey:RoleID"`
}

// User models an account with credential material and role membership.
// PasswordHash is the HMAC-SHA512 digest of the password keyed with
// PasswordSalt; neither ever leaves the process.
type User struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:50;not null;uniqueIndex"`
	Email        string `json:"email" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash []byte `json:"-" gorm:"not null"`
	PasswordSalt []byte `json:"-" gorm:"not null"`
	RoleID       string `json:"role_id" gorm:"size:10;not null"`
	Role         *Role  `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}
