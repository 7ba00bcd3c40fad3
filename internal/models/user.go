package models

// User is the users collection schema. No endpoint references it yet;
// it is kept so the user collection has a validated shape when one does.
type User struct {
	ID       string `json:"id,omitempty" bson:"-"`
	Name     string `json:"name" bson:"name" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active" bson:"is_active"`
}

func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
