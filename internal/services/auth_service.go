package services

import (
	"context"
	"log"
	"time"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/models/response_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

const otpTTL = 15 * time.Minute

type AuthService interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error
	ListUsers(ctx context.Context) ([]db_models.User, error)
	AddAddress(ctx context.Context, userID string, req request_models.AddressRequest) (*db_models.Address, error)
	ListAddresses(ctx context.Context, userID string) ([]db_models.Address, error)
}

type authService struct {
	userRepo repositories.UserRepository
	mailer   IMailService
}

func NewAuthService(userRepo repositories.UserRepository, mailer IMailService) AuthService {
	return &authService{userRepo: userRepo, mailer: mailer}
}

func (s *authService) SignUp(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &db_models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         db_models.RoleUser,
		IsActive:     true,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *authService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email, user.Phone, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{Token: token, Role: string(user.Role)}, nil
}

// ForgotPassword always reports success so the endpoint cannot be used to
// probe which emails are registered.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	otp, err := utils.GenerateOtpCode(6)
	if err != nil {
		return err
	}
	expiry := time.Now().Add(otpTTL).Unix()
	user.ResetOtp = &otp
	user.ResetOtpExpiresAt = &expiry
	if err := s.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.mailer.SendPasswordResetOtp(user.Email, otp); err != nil {
		log.Printf("auth: sending reset otp to %s: %v", user.Email, err)
	}
	return nil
}

func (s *authService) VerifyOtp(ctx context.Context, email, otp string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	return checkOtp(user, otp)
}

// ResetPassword consumes the OTP: both reset fields are cleared on success so
// a second use of the same code fails.
func (s *authService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := checkOtp(user, req.Otp); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ResetOtp = nil
	user.ResetOtpExpiresAt = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func checkOtp(user *db_models.User, otp string) error {
	if user == nil || user.ResetOtp == nil || user.ResetOtpExpiresAt == nil {
		return utils.ErrOtpInvalid
	}
	if *user.ResetOtp != otp || time.Now().Unix() > *user.ResetOtpExpiresAt {
		return utils.ErrOtpInvalid
	}
	return nil
}

func (s *authService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range users {
		users[i].PasswordHash = ""
		users[i].ResetOtp = nil
	}
	return users, nil
}

func (s *authService) AddAddress(ctx context.Context, userID string, req request_models.AddressRequest) (*db_models.Address, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	address := &db_models.Address{
		UserID:     user.ID,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
	if err := s.userRepo.InsertAddress(ctx, address); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return address, nil
}

func (s *authService) ListAddresses(ctx context.Context, userID string) ([]db_models.Address, error) {
	addresses, err := s.userRepo.FindAddresses(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return addresses, nil
}
