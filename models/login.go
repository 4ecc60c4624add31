package models

// LoginRecord is a document of the login collection, keyed by email
type LoginRecord struct {
	Email    string `dynamodbav:"email" bson:"email" json:"email"`
	Name     string `dynamodbav:"name,omitempty" bson:"name,omitempty" json:"name"`
	Password string `dynamodbav:"password,omitempty" bson:"password,omitempty" json:"-"` // plaintext, compared by equality
	Phone    string `dynamodbav:"phone,omitempty" bson:"phone,omitempty" json:"phone"`
	Gender   string `dynamodbav:"gender,omitempty" bson:"gender,omitempty" json:"gender"`
	Degree   string `dynamodbav:"degree,omitempty" bson:"degree,omitempty" json:"degree,omitempty"`
	DOB      string `dynamodbav:"dob,omitempty" bson:"dob,omitempty" json:"dob,omitempty"`
	Major    string `dynamodbav:"major,omitempty" bson:"major,omitempty" json:"major,omitempty"`
}

// GenderOrDefault returns the stored gender, or "other" when none was stored
func (l *LoginRecord) GenderOrDefault() string {
	if l.Gender == "" {
		return DefaultGender
	}
	return l.Gender
}
