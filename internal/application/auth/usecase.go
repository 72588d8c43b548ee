package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bike-ledgers/internal/application/dto"
	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/internal/domain/repository"
	"github.com/jhoicas/bike-ledgers/pkg/jwt"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase administra las cuentas de empresa. El registro completo se lee
// una vez al arrancar y se reescribe entero en cada alta o cambio de perfil.
type AuthUseCase struct {
	store  repository.KeyValueStore
	key    string
	jwtCfg JWTConfig
	log    *logger.Logger

	mu       sync.Mutex
	accounts []entity.CompanyProfile
}

// NewAuthUseCase carga las cuentas existentes desde el almacén.
func NewAuthUseCase(ctx context.Context, store repository.KeyValueStore, key string, jwtCfg JWTConfig, log *logger.Logger) (*AuthUseCase, error) {
	uc := &AuthUseCase{store: store, key: key, jwtCfg: jwtCfg, log: log.Component("auth")}
	raw, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return uc, nil
	case err != nil:
		return nil, fmt.Errorf("auth: leer cuentas: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &uc.accounts); err != nil {
			return nil, fmt.Errorf("auth: decodificar cuentas: %w", err)
		}
	}
	uc.log.Info().Int("accounts", len(uc.accounts)).Msg("cuentas cargadas")
	return uc, nil
}

// Register crea la cuenta y abre sesión. Rechaza un email ya registrado sin
// tocar la cuenta existente.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	// Solo la dirección desnuda: "Bob <bob@x.com>" no es una clave válida.
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, fmt.Errorf("%w: company_name es obligatorio", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	profile := entity.CompanyProfile{
		Email:                 email,
		PasswordHash:          string(hash),
		CompanyName:           strings.TrimSpace(in.CompanyName),
		CompanyLocation:       strings.TrimSpace(in.CompanyLocation),
		GSTIN:                 in.GSTIN,
		DefaultTaxRate:        decimal.NewFromInt(entity.DefaultTaxRate),
		LowStockAlertsEnabled: true,
	}
	profile.ApplyDefaults()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.indexOf(email) >= 0 {
		return nil, domain.ErrEmailAlreadyExists
	}
	next := append(append([]entity.CompanyProfile(nil), uc.accounts...), profile)
	if err := uc.persist(ctx, next); err != nil {
		return nil, err
	}
	uc.accounts = next
	uc.log.Info().Str("email", email).Msg("cuenta registrada")
	return uc.session(profile)
}

// Login valida email exacto + password y devuelve un token de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	uc.mu.Lock()
	i := uc.indexOf(in.Email)
	var profile entity.CompanyProfile
	if i >= 0 {
		profile = uc.accounts[i]
	}
	uc.mu.Unlock()

	if i < 0 {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.session(profile)
}

// Profile devuelve la cuenta con la tarifa GST por defecto aplicada.
func (uc *AuthUseCase) Profile(email string) (entity.CompanyProfile, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	i := uc.indexOf(email)
	if i < 0 {
		return entity.CompanyProfile{}, domain.ErrNotFound
	}
	p := uc.accounts[i]
	p.ApplyDefaults()
	return p, nil
}

// UpdateProfile guarda la configuración de la empresa y reescribe el registro completo.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, email string, in dto.UpdateSettingsRequest) (*dto.ProfileResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(email)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := uc.accounts[i]
	if in.CompanyName != nil {
		if strings.TrimSpace(*in.CompanyName) == "" {
			return nil, fmt.Errorf("%w: company_name no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.CompanyName = strings.TrimSpace(*in.CompanyName)
	}
	if in.CompanyLocation != nil {
		p.CompanyLocation = strings.TrimSpace(*in.CompanyLocation)
	}
	if in.GSTIN != nil {
		p.GSTIN = *in.GSTIN
	}
	if in.DefaultGSTRate != nil {
		if !entity.IsAllowedTaxRate(*in.DefaultGSTRate) {
			return nil, fmt.Errorf("%w: default_gst_rate debe ser 5, 12, 18 o 28", domain.ErrInvalidInput)
		}
		p.DefaultTaxRate = *in.DefaultGSTRate
	}
	if in.InvoicePrefix != nil {
		p.InvoicePrefix = strings.TrimSpace(*in.InvoicePrefix)
	}
	if in.LowStockAlertsEnabled != nil {
		p.LowStockAlertsEnabled = *in.LowStockAlertsEnabled
	}
	p.ApplyDefaults()

	next := append([]entity.CompanyProfile(nil), uc.accounts...)
	next[i] = p
	if err := uc.persist(ctx, next); err != nil {
		return nil, err
	}
	uc.accounts = next
	uc.log.Info().Str("email", email).Msg("configuración guardada")
	out := ToProfileResponse(p)
	return &out, nil
}

// RequestPasswordReset solo deja constancia de la solicitud; no hay envío de correo.
func (uc *AuthUseCase) RequestPasswordReset(email string) error {
	uc.mu.Lock()
	i := uc.indexOf(email)
	uc.mu.Unlock()
	if i < 0 {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("email", email).Msg("solicitud de restablecimiento de contraseña")
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// indexOf requiere uc.mu. La comparación de email es exacta.
func (uc *AuthUseCase) indexOf(email string) int {
	for i := range uc.accounts {
		if uc.accounts[i].Email == email {
			return i
		}
	}
	return -1
}

func (uc *AuthUseCase) persist(ctx context.Context, accounts []entity.CompanyProfile) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("auth: serializar cuentas: %w", err)
	}
	if err := uc.store.Put(ctx, uc.key, raw); err != nil {
		return fmt.Errorf("auth: guardar cuentas: %w", err)
	}
	return nil
}

func (uc *AuthUseCase) session(p entity.CompanyProfile) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, p.Email, p.CompanyName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	p.ApplyDefaults()
	return &dto.LoginResponse{Token: token, Profile: ToProfileResponse(p)}, nil
}

// ToProfileResponse mapea la cuenta al DTO de salida (sin credenciales). Sin
// prefijo guardado muestra el del formulario de configuración.
func ToProfileResponse(p entity.CompanyProfile) dto.ProfileResponse {
	prefix := p.InvoicePrefix
	if prefix == "" {
		prefix = entity.DefaultInvoicePrefix
	}
	return dto.ProfileResponse{
		Email:                 p.Email,
		CompanyName:           p.CompanyName,
		CompanyLocation:       p.CompanyLocation,
		GSTIN:                 p.GSTIN,
		DefaultGSTRate:        p.DefaultTaxRate,
		InvoicePrefix:         prefix,
		LowStockAlertsEnabled: p.LowStockAlertsEnabled,
	}
}
