package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	unlockRepo ports.UnlockRepository
	hashSvc    ports.HashService
	tokenSvc   ports.TokenService
	google     ports.GoogleIdentityVerifier
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	unlockRepo ports.UnlockRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	google ports.GoogleIdentityVerifier,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		unlockRepo: unlockRepo,
		hashSvc:    hashSvc,
		tokenSvc:   tokenSvc,
		google:     google,
		transactor: transactor,
		log:        logger.For(log, logger.Auth),
	}
}

// Register creates a password account and its zero-balance wallet.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check email: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUserExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: &passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	wallet, err := s.createAccount(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return s.issue(user, wallet)
}

// Login authenticates with email and password.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil || !user.HasPassword() {
		return nil, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, *user.PasswordHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return nil, apperror.ErrInvalidCredentials()
	}

	wallet, err := s.walletOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.issue(user, wallet)
}

// GoogleLogin signs in with a Google ID token, creating the account on first
// use and linking the Google identity to an existing password account.
func (s *AuthServiceImpl) GoogleLogin(ctx context.Context, idToken string) (*ports.AuthResult, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, apperror.ErrGoogleAuthFailed(err)
	}
	email := domain.NormalizeEmail(identity.Email)
	if email == "" {
		return nil, apperror.ErrGoogleAuthFailed(errors.New("token carries no email"))
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}

	if user == nil {
		now := time.Now().UTC()
		user = &domain.User{
			ID:        uuid.New(),
			Name:      displayName(identity, email),
			Email:     email,
			GoogleID:  stringPtr(identity.Subject),
			PhotoURL:  stringPtr(identity.Picture),
			CreatedAt: now,
			UpdatedAt: now,
		}
		wallet, err := s.createAccount(ctx, user)
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("user_id", user.ID.String()).Msg("user registered via google")
		return s.issue(user, wallet)
	}

	if user.GoogleID == nil {
		photo := stringPtr(identity.Picture)
		if err := s.userRepo.LinkGoogleAccount(ctx, user.ID, identity.Subject, photo); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("link google account: %w", err))
		}
		user.GoogleID = stringPtr(identity.Subject)
		if photo != nil {
			user.PhotoURL = photo
		}
		s.log.Info().Str("user_id", user.ID.String()).Msg("google account linked")
	}

	wallet, err := s.walletOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.issue(user, wallet)
}

// Me returns the profile of an authenticated user.
func (s *AuthServiceImpl) Me(ctx context.Context, userID uuid.UUID) (*ports.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}

	wallet, err := s.walletOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlocks, err := s.unlockRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list unlocks: %w", err))
	}

	return &ports.UserProfile{
		User:            user,
		Gold:            wallet.Gold,
		Crystals:        wallet.Crystals,
		UnlockedTestIDs: domain.UnlockedTestIDs(unlocks),
	}, nil
}

// createAccount inserts the user and a zero wallet in one transaction.
func (s *AuthServiceImpl) createAccount(ctx context.Context, user *domain.User) (*domain.Wallet, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.userRepo.Create(ctx, dbTx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperror.ErrUserExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	wallet := domain.NewWallet(user.ID, user.CreatedAt)
	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	if err := commit(ctx, dbTx); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperror.ErrUserExists()
		}
		return nil, apperror.InternalError(err)
	}
	return wallet, nil
}

func (s *AuthServiceImpl) walletOf(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return wallet, nil
}

func (s *AuthServiceImpl) issue(user *domain.User, wallet *domain.Wallet) (*ports.AuthResult, error) {
	token, expiresAt, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return &ports.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		Gold:      wallet.Gold,
		Crystals:  wallet.Crystals,
	}, nil
}

func commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func displayName(id *ports.GoogleIdentity, email string) string {
	if name := strings.TrimSpace(id.Name); name != "" {
		return name
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
