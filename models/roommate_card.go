package models

// RoommateCard summarizes a candidate roommate for the top-match listing
type RoommateCard struct {
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Age       Scalar   `json:"age"`
	StartDate string   `json:"startDate"`
	Title     string   `json:"title"`
	Locations []string `json:"locations"`
	Gender    string   `json:"gender"`
	IsFav     bool     `json:"isFav"`
	Phone     string   `json:"phone"`
	PhotoURL  string   `json:"photoUrl"`
}

// ExtendedRoommateCard adds lifestyle fields for the other-mates listing
type ExtendedRoommateCard struct {
	RoommateCard
	Smoke             bool   `json:"smoke"`
	Budget            Scalar `json:"budget"`
	Drink             bool   `json:"drink"`
	DietaryPreference string `json:"dietaryPreference"`
}

// UserDetails merges a user's profile and login data, without the password
type UserDetails struct {
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	Phone              string     `json:"phone"`
	Gender             string     `json:"gender"`
	Degree             string     `json:"degree"`
	DOB                string     `json:"dob"`
	Major              string     `json:"major"`
	Age                Scalar     `json:"age"`
	StartDate          string     `json:"startDate"`
	Title              string     `json:"title"`
	Preference         Preference `json:"preference"`
	Smoke              bool       `json:"smoke"`
	Drink              bool       `json:"drink"`
	Budget             Scalar     `json:"budget"`
	PhotoURL           string     `json:"photoUrl"`
	FavouriteRoommates []string   `json:"favouriteRoommates"`
}
