package user

// CreateUserRequest carries the account trio: profile fields, the account
// row, and the credential.
type CreateUserRequest struct {
	UserTypeID *int16  `json:"userTypeId"`
	Remarks    *string `json:"remarks"`

	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Number     *string `json:"number"`
	UserCode   *string `json:"userCode"`
	StatusID   *int16  `json:"statusId"`

	Password *string `json:"password"`
}

// UpdateUserRequest updates by presence across the same trio.
type UpdateUserRequest = CreateUserRequest
