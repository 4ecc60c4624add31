package models

import "encoding/json"

// ValidateRequest is the body of POST /user/validate
type ValidateRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /user/insert. Field order is the order
// in which missing fields are reported.
type RegisterRequest struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Phone    *string `json:"phone" validate:"required"`
	Degree   *string `json:"degree" validate:"required"`
	DOB      *string `json:"dob" validate:"required"`
	Gender   *string `json:"gender" validate:"required"`
	Major    *string `json:"major" validate:"required"`
}

// LoginRecord converts a validated registration into the stored document
func (r *RegisterRequest) LoginRecord() LoginRecord {
	return LoginRecord{
		Email:    deref(r.Email),
		Name:     deref(r.Name),
		Password: deref(r.Password),
		Phone:    deref(r.Phone),
		Gender:   deref(r.Gender),
		Degree:   deref(r.Degree),
		DOB:      deref(r.DOB),
		Major:    deref(r.Major),
	}
}

// FavouriteRequest is the body of POST /user/favourites
type FavouriteRequest struct {
	UserEmail *string `json:"user_email" validate:"required"`
	FavEmail  *string `json:"fav_email" validate:"required"`
	AddFav    FavFlag `json:"add_fav" validate:"required"`
}

// FavFlag keeps the raw JSON of add_fav. Clients send either the string "True"
// or a boolean, and only the exact string "True" means add.
type FavFlag []byte

// UnmarshalJSON stores the raw value, including a literal null
func (f *FavFlag) UnmarshalJSON(data []byte) error {
	*f = append((*f)[:0], data...)
	return nil
}

// Adds reports whether the flag asks for the favourite to be added
func (f FavFlag) Adds() bool {
	var s string
	if err := json.Unmarshal(f, &s); err != nil {
		return false
	}
	return s == "True"
}

// PhotoUploadRequest is the body of POST /photos/upload-url
type PhotoUploadRequest struct {
	FileName string `json:"fileName" validate:"required"`
	FileType string `json:"fileType" validate:"required"`
}

// PhotoUpload is the presigned upload returned to the client
type PhotoUpload struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	PhotoURL string `json:"photoUrl"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
