package user

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/handler"
	"github.com/taskhub/taskhub/svc/identity"
)

type emptyRequest struct{}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type confirmEmailRequest struct {
	UserID uuid.UUID `query:"userId"`
	Token  string    `query:"token"`
}

type confirmNewEmailRequest struct {
	UserID   uuid.UUID `query:"userId"`
	Token    string    `query:"token"`
	NewEmail string    `query:"newEmail"`
}

type userIDRequest struct {
	ID uuid.UUID `path:"id"`
}

type unlockAccountRequest struct {
	UserID uuid.UUID `query:"userId"`
}

type updateProfileRequest struct {
	ID                 uuid.UUID `path:"id"`
	Username           string    `json:"username"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	PhoneNumber        string    `json:"phone_number"`
	ProfilePicturePath string    `json:"profile_picture_path"`
}

type changePasswordRequest struct {
	ID              uuid.UUID `path:"id"`
	CurrentPassword string    `json:"current_password"`
	NewPassword     string    `json:"new_password"`
}

type changeEmailRequest struct {
	ID       uuid.UUID `path:"id"`
	NewEmail string    `json:"new_email"`
	Password string    `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Service) register(ctx handler.Context, req registerRequest) handler.Response {
	u, err := s.identity.Register(ctx, identity.RegisterParams{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(u, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) login(ctx handler.Context, req loginRequest) handler.Response {
	session, err := s.identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(session)
}

func (s *Service) confirmEmail(ctx handler.Context, req confirmEmailRequest) handler.Response {
	if err := s.identity.ConfirmEmail(ctx, req.UserID, req.Token); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "email confirmed"})
}

func (s *Service) confirmNewEmail(ctx handler.Context, req confirmNewEmailRequest) handler.Response {
	if err := s.identity.ConfirmEmailChange(ctx, req.UserID, req.NewEmail, req.Token); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "email changed"})
}

func (s *Service) listUsers(ctx handler.Context, _ emptyRequest) handler.Response {
	users, err := s.identity.ListUsers(ctx)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(users)
}

func (s *Service) getUser(ctx handler.Context, req userIDRequest) handler.Response {
	u, err := s.identity.GetUser(ctx, req.ID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(u)
}

func (s *Service) userRoles(ctx handler.Context, req userIDRequest) handler.Response {
	roles, err := s.identity.UserRoles(ctx, req.ID)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(roles)
}

func (s *Service) updateProfile(ctx handler.Context, req updateProfileRequest) handler.Response {
	u, err := s.identity.UpdateProfile(ctx, req.ID, identity.UpdateProfileParams{
		Username:           req.Username,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		PhoneNumber:        req.PhoneNumber,
		ProfilePicturePath: req.ProfilePicturePath,
	})
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(u)
}

func (s *Service) deleteUser(ctx handler.Context, req userIDRequest) handler.Response {
	if err := s.identity.DeleteUser(ctx, req.ID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "user deleted"})
}

func (s *Service) lockAccount(ctx handler.Context, req userIDRequest) handler.Response {
	if err := s.identity.LockAccount(ctx, req.ID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "account locked"})
}

func (s *Service) unlockAccount(ctx handler.Context, req unlockAccountRequest) handler.Response {
	if err := s.identity.UnlockAccount(ctx, req.UserID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "account unlocked"})
}

// logout acknowledges the request; session tokens are stateless and simply
// expire.
func (s *Service) logout(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.JSON(messageResponse{Message: "logged out"})
}

func (s *Service) enableTwoFactor(ctx handler.Context, req userIDRequest) handler.Response {
	if err := s.identity.EnableTwoFactor(ctx, req.ID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "two-factor enabled"})
}

func (s *Service) disableTwoFactor(ctx handler.Context, req userIDRequest) handler.Response {
	if err := s.identity.DisableTwoFactor(ctx, req.ID); err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "two-factor disabled"})
}

func (s *Service) changePassword(ctx handler.Context, req changePasswordRequest) handler.Response {
	session, err := s.identity.ChangePassword(ctx, req.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(session)
}

func (s *Service) changeEmail(ctx handler.Context, req changeEmailRequest) handler.Response {
	change, err := s.identity.RequestEmailChange(ctx, req.ID, req.NewEmail, req.Password)
	if err != nil {
		return handler.JSONError(mapError(err))
	}
	return handler.JSON(messageResponse{Message: "confirmation sent to " + change.NewEmail})
}
