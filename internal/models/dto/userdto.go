package dto

// UserCreateFormDTO carries the form fields of a collection POST.
type UserCreateFormDTO struct {
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	DisplayName string `mapstructure:"displayName"`
}

// UserUpdateFormDTO carries the form fields of a POST on a single user.
type UserUpdateFormDTO struct {
	Password    string `mapstructure:"password"`
	DisplayName string `mapstructure:"displayName"`
}
