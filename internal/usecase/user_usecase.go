package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pregen/shop-api/internal/domain/apperr"
	"github.com/pregen/shop-api/internal/domain/contract"
	"github.com/pregen/shop-api/internal/domain/entity"
	"github.com/pregen/shop-api/internal/infrastructure/metrics"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

// Constants for common error messages
const (
	errInternalServer = "internal server error"
)

// Errors surfaced to clients. Login collapses "no such user" and "wrong password"
// into ErrInvalidCredentials; deleted and blocked accounts get their own reasons.
var (
	ErrInvalidCredentials  = apperr.Unauthorized("Invalid credentials.")
	ErrAccountDeleted      = apperr.Forbidden("This account was deleted. Please contact the administrator.")
	ErrAccountBlocked      = apperr.Forbidden("This account is blocked. Contact support or an administrator.")
	ErrMissingToken        = apperr.Unauthorized("Authentication required")
	ErrSessionExpired      = apperr.Unauthorized("Session expired. Please login again.")
	ErrInvalidToken        = apperr.Unauthorized("Invalid or missing authentication token.")
	ErrInvalidTokenPayload = apperr.Unauthorized("Invalid token payload")
	ErrIdentityNotFound    = apperr.Unauthorized("User not found")
	ErrUserNotFound        = apperr.NotFound("User not found")
	ErrUserExists          = apperr.Conflict("Username or email already exists")
	ErrAlreadyDeleted      = apperr.Conflict("User is already soft-deleted")
	ErrNotDeleted          = apperr.Conflict("User is not deleted")
	ErrRoleChangeForbidden = apperr.Forbidden("Only Super Admin can assign roles")
	ErrProfileForbidden    = apperr.Forbidden("You can only update your own profile")
	ErrPasswordForbidden   = apperr.Forbidden("You cannot change the password of a more privileged user")
)

// UserUsecase implements the UserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	userCache     contract.IUserCache
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator

	// lookups collapses concurrent identity loads for the same user id.
	lookups singleflight.Group
	now     func() time.Time
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		now:           time.Now,
	}
}

// check if UserUseCase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// SetUserCache enables the identity cache. Without it every lookup goes to the store.
func (uc *UserUsecase) SetUserCache(cache contract.IUserCache) {
	uc.userCache = cache
}

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput, actor *entity.User) (*entity.User, string, error) {
	username := entity.NormalizeUsername(in.Username)
	email := entity.NormalizeEmail(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, "", apperr.Validation("Username, email and password are required.")
	}
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, "", apperr.Validation(fmt.Sprintf("invalid username: %v", err))
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", apperr.Validation("invalid email format")
	}
	if err := uc.validator.ValidatePasswordStrength(in.Password); err != nil {
		return nil, "", apperr.Validation(fmt.Sprintf("weak password: %v", err))
	}

	gender := entity.DefaultGender()
	if in.Gender != "" {
		gender = entity.NormalizeGender(in.Gender)
		if !gender.Valid() {
			return nil, "", apperr.Validation("gender must be one of male, female, other")
		}
	}
	role := uc.resolveRequestedRole(in.Role, actor)

	// The unique indexes are the final arbiter; this only gives an early answer.
	if err := uc.ensureAvailable(ctx, username, email); err != nil {
		return nil, "", err
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", apperr.Internal("failed to process password", err)
	}

	now := uc.now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Gender:       gender,
		Role:         role,
		ActivityLog:  []entity.ActivityEntry{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateUser) {
			return nil, "", ErrUserExists
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", apperr.Internal("failed to register user", err)
	}

	token, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate access token for new user %s: %v", user.ID, err)
		return nil, "", apperr.Internal("Token generation failed.", err)
	}

	uc.logger.Infof("registered user %s with role %s", user.ID, user.Role)
	return user.Public(), token, nil
}

// resolveRequestedRole downgrades any role the actor may not hand out to the default one.
func (uc *UserUsecase) resolveRequestedRole(requested string, actor *entity.User) entity.UserRole {
	role, ok := entity.ParseRole(requested)
	if !ok {
		return entity.DefaultRole()
	}
	var actorRole entity.UserRole
	if actor != nil {
		actorRole = actor.Role
	}
	if !entity.CanAssignRole(actorRole, role) {
		uc.logger.Warnf("role %s requested without permission, downgrading to %s", role, entity.DefaultRole())
		return entity.DefaultRole()
	}
	return role
}

func (uc *UserUsecase) ensureAvailable(ctx context.Context, username, email string) error {
	_, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return apperr.Internal(errInternalServer, err)
	}

	_, err = uc.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return apperr.Internal(errInternalServer, err)
	}
	return nil
}

// Login handles user login and token generation.
func (uc *UserUsecase) Login(ctx context.Context, email, password, ip string) (*entity.User, string, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apperr.Validation("Email and password are required.")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", apperr.Internal("Login failed. Please try again later.", err)
	}

	if user.Deleted {
		return nil, "", ErrAccountDeleted
	}
	if user.Blocked {
		return nil, "", ErrAccountBlocked
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, contract.ErrPasswordMismatch) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to verify password for user %s: %v", user.ID, err)
		return nil, "", apperr.Internal("Login failed. Please try again later.", err)
	}

	token, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", apperr.Internal("Token generation failed.", err)
	}

	// Login metadata is best-effort: a failed write is logged and the login still succeeds.
	at := uc.now()
	if err := uc.recordLogin(ctx, user.ID, ip, at); err != nil {
		uc.logger.Warnf("failed to record login metadata for user %s: %v", user.ID, err)
	} else {
		user.LastLogin = &at
		user.LastIP = ip
		user.ActivityLog = append(user.ActivityLog, entity.ActivityEntry{Action: entity.ActivityLogin, Timestamp: at})
	}

	return user.Public(), token, nil
}

// RecordLogin stamps last login time and IP and appends a login activity entry.
func (uc *UserUsecase) RecordLogin(ctx context.Context, userID, ip string) error {
	if err := uc.recordLogin(ctx, userID, ip, uc.now()); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return ErrUserNotFound
		}
		uc.logger.Errorf("failed to record login metadata for user %s: %v", userID, err)
		return apperr.Internal("Failed to update login metadata", err)
	}
	return nil
}

func (uc *UserUsecase) recordLogin(ctx context.Context, userID, ip string, at time.Time) error {
	if err := uc.userRepo.RecordLogin(ctx, userID, ip, at); err != nil {
		return err
	}
	uc.forget(ctx, userID)
	return nil
}

// Authenticate resolves an access token to the public record of its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, ErrMissingToken
	}

	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, apperr.Wrap(apperr.KindUnauthorized, ErrSessionExpired.Message, err)
		}
		return nil, apperr.Wrap(apperr.KindUnauthorized, ErrInvalidToken.Message, err)
	}
	if claims.UserID == "" {
		return nil, ErrInvalidTokenPayload
	}

	user, err := uc.loadIdentity(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrIdentityNotFound
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, apperr.Internal(errInternalServer, err)
	}
	return user, nil
}

// loadIdentity reads a public user through the cache. Concurrent calls for the same
// id share one lookup; each caller gets its own copy. The shared lookup is detached
// from any single caller's cancellation, and each caller stops waiting on its own ctx.
func (uc *UserUsecase) loadIdentity(ctx context.Context, userID string) (*entity.User, error) {
	flightCtx := context.WithoutCancel(ctx)
	ch := uc.lookups.DoChan(userID, func() (interface{}, error) {
		if uc.userCache != nil {
			cached, found, err := uc.userCache.GetUser(flightCtx, userID)
			if err != nil {
				uc.logger.Warnf("user cache read failed for %s: %v", userID, err)
			} else if found {
				metrics.IncIdentityCacheHit()
				return cached, nil
			}
			metrics.IncIdentityCacheMiss()
		}

		user, err := uc.userRepo.GetUserByID(flightCtx, userID)
		if err != nil {
			return nil, err
		}
		public := user.Public()
		if uc.userCache != nil {
			if err := uc.userCache.SetUser(flightCtx, public); err != nil {
				uc.logger.Warnf("user cache write failed for %s: %v", userID, err)
			}
		}
		return public, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		user := *res.Val.(*entity.User)
		return &user, nil
	}
}

// forget drops a user from the identity cache after a mutation.
func (uc *UserUsecase) forget(ctx context.Context, userID string) {
	if uc.userCache == nil {
		return
	}
	if err := uc.userCache.InvalidateUser(ctx, userID); err != nil {
		uc.logger.Warnf("user cache invalidation failed for %s: %v", userID, err)
	}
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, apperr.Internal(errInternalServer, err)
	}
	return user.Public(), nil
}

// ListUsers returns all users, newest first.
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, apperr.Internal(errInternalServer, err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// UpdateProfile applies the allow-listed profile fields. The actor must own the
// profile or hold an admin role.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, actor *entity.User, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	if actor == nil {
		return nil, ErrMissingToken
	}
	if actor.ID != userID && !actor.Role.AtLeast(entity.UserRoleAdmin) {
		return nil, ErrProfileForbidden
	}

	fields := make(map[string]interface{})
	if update.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*update.LastName)
	}
	if update.Gender != nil {
		gender := entity.NormalizeGender(*update.Gender)
		if !gender.Valid() {
			return nil, apperr.Validation("gender must be one of male, female, other")
		}
		fields["gender"] = gender
	}
	if update.ProfilePhoto != nil {
		fields["profile_photo"] = strings.TrimSpace(*update.ProfilePhoto)
	}
	if len(fields) == 0 {
		return uc.GetUserByID(ctx, userID)
	}
	fields["updated_at"] = uc.now()

	updated, err := uc.userRepo.UpdateUserFields(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, apperr.Internal("failed to update profile", err)
	}
	uc.forget(ctx, userID)

	uc.logger.Infof("user %s profile updated by %s", userID, actor.ID)
	return updated.Public(), nil
}

// UpdateRoleOrPassword changes a user's role, password, or both. Only a super admin
// may change roles.
func (uc *UserUsecase) UpdateRoleOrPassword(ctx context.Context, actor *entity.User, userID, newRole, newPassword string) error {
	if newRole == "" && newPassword == "" {
		return apperr.Validation("newRole or newPassword is required")
	}

	target, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user %s for privileged update: %v", userID, err)
		return apperr.Internal(errInternalServer, err)
	}

	fields := make(map[string]interface{})
	if newRole != "" {
		if actor == nil || actor.Role != entity.UserRoleSuperAdmin {
			return ErrRoleChangeForbidden
		}
		role, ok := entity.ParseRole(newRole)
		if !ok {
			return apperr.Validation(fmt.Sprintf("unknown role %q", newRole))
		}
		fields["role"] = role
	}
	if newPassword != "" {
		if !canSetPassword(actor, target) {
			uc.logger.Warnf("password change of %s (%s) refused for actor with lower role", userID, target.Role)
			return ErrPasswordForbidden
		}
		if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
			return apperr.Validation(fmt.Sprintf("weak password: %v", err))
		}
		hashedPassword, err := uc.hasher.HashPassword(newPassword)
		if err != nil {
			uc.logger.Errorf("failed to hash password: %v", err)
			return apperr.Internal("failed to process password", err)
		}
		fields["password_hash"] = hashedPassword
	}
	fields["updated_at"] = uc.now()

	if _, err := uc.userRepo.UpdateUserFields(ctx, userID, fields); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return ErrUserNotFound
		}
		uc.logger.Errorf("failed to update role/password for user %s: %v", userID, err)
		return apperr.Internal("failed to update user", err)
	}
	uc.forget(ctx, userID)

	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}
	uc.logger.Infof("user %s updated by %s (role changed: %t, password changed: %t)", userID, actorID, newRole != "", newPassword != "")
	return nil
}

func canSetPassword(actor, target *entity.User) bool {
	if actor == nil {
		return false
	}
	return actor.ID == target.ID || entity.CanManage(actor.Role, target.Role)
}

// SoftDelete marks a user deleted without removing the record.
func (uc *UserUsecase) SoftDelete(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user %s for deletion: %v", userID, err)
		return nil, apperr.Internal("Failed to soft delete user", err)
	}
	if user.Deleted {
		return nil, ErrAlreadyDeleted
	}

	deletedAt := uc.now()
	changed, err := uc.userRepo.SetDeleted(ctx, userID, true, &deletedAt)
	if err != nil {
		uc.logger.Errorf("failed to soft delete user %s: %v", userID, err)
		return nil, apperr.Internal("Failed to soft delete user", err)
	}
	if !changed {
		// someone else deleted it between the read and the write
		return nil, ErrAlreadyDeleted
	}
	uc.forget(ctx, userID)

	user.Deleted = true
	user.DeletedAt = &deletedAt
	return user.Public(), nil
}

// Restore clears the soft-delete marker.
func (uc *UserUsecase) Restore(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user %s for restore: %v", userID, err)
		return apperr.Internal("Failed to restore user", err)
	}
	if !user.Deleted {
		return ErrNotDeleted
	}

	changed, err := uc.userRepo.SetDeleted(ctx, userID, false, nil)
	if err != nil {
		uc.logger.Errorf("failed to restore user %s: %v", userID, err)
		return apperr.Internal("Failed to restore user", err)
	}
	if !changed {
		return ErrNotDeleted
	}
	uc.forget(ctx, userID)
	return nil
}

// ToggleBlock flips the blocked flag and returns its new value.
func (uc *UserUsecase) ToggleBlock(ctx context.Context, userID string) (bool, error) {
	blocked, err := uc.userRepo.ToggleBlocked(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return false, ErrUserNotFound
		}
		uc.logger.Errorf("failed to toggle block status for user %s: %v", userID, err)
		return false, apperr.Internal("Error toggling block status", err)
	}
	uc.forget(ctx, userID)
	return blocked, nil
}
