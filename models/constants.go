package models

// Collection (table) names shared by every store backend
const (
	ProfilesCollection = "user_profile_data"
	LoginsCollection   = "user_login_data"
)

// TopMatchLimit is how many entries of recommendedRoommates count as top matches
const TopMatchLimit = 5

// Defaults applied when shaping roommate cards
const (
	DefaultGender   = "other"
	DefaultPhotoURL = "https://profile-photos-1.s3.us-east-2.amazonaws.com/default.jpg"
)

// Response messages
const (
	MsgLoggedIn          = "User Logged in!"
	MsgSignedUp          = "You have been Signed Up!"
	MsgFavouriteAdded    = "Favourite Added!"
	MsgFavouriteDeleted  = "Favourite Deleted!"
	MsgUserMissing       = "User does not exist please Sign up!"
	MsgWrongPassword     = "Wrong Password, try again!"
	MsgNoDocument        = "No matching document found"
	MsgEmailRequired     = "Email parameter is required"
	MsgNoRecommendations = "No recommended roommates found"
	MsgRecommendedShape  = "recommendedRoommates is not a list"
	MsgLoginMissing      = "User login data not found"
	MsgProfileMissing    = "User profile not found"
	MsgInternal          = "Internal Server Error"
	MsgInvalidPayload    = "Invalid request payload"
)
