package share

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// DownloadClaims are embedded in signed export download tokens.
type DownloadClaims struct {
	ShareToken string `json:"share_token"`
	Format     string `json:"format"`
	jwt.RegisteredClaims
}

// Exporter is the document-generation stub. It produces no file; it signs
// a time-bounded download URL after a fixed delay, standing in for a real
// export service behind the same interface.
type Exporter struct {
	secret []byte
	ttl    time.Duration
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewExporter(secret string, ttl time.Duration, logger *zap.Logger) *Exporter {
	return &Exporter{
		secret: []byte(secret),
		ttl:    ttl,
		delay:  150 * time.Millisecond,
		logger: logger,
		now:    time.Now,
	}
}

// Export simulates document generation and returns a relative download
// path carrying a signed token.
func (e *Exporter) Export(shareToken string, format ExportFormat) (string, error) {
	// Stand-in for the real generation latency.
	time.Sleep(e.delay)

	signed, err := e.signDownloadToken(shareToken, string(format))
	if err != nil {
		e.logger.Warn("export token signing failed", zap.Error(err))
		return "", ErrExportFailed
	}

	url := fmt.Sprintf("/api/download/itinerary-%d.%s?token=%s", e.now().UnixMilli(), format, signed)
	e.logger.Info("itinerary export prepared",
		zap.String("share_token", shareToken),
		zap.String("format", string(format)),
	)
	return url, nil
}

func (e *Exporter) signDownloadToken(shareToken, format string) (string, error) {
	now := e.now().UTC()

	claims := &DownloadClaims{
		ShareToken: shareToken,
		Format:     format,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   shareToken,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(e.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign download token: %w", err)
	}
	return signed, nil
}

// ParseDownloadToken validates a signed download token and returns its
// claims.
func (e *Exporter) ParseDownloadToken(tokenStr string) (*DownloadClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &DownloadClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %T", t.Method)
		}
		return e.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse download token: %w", err)
	}

	claims, ok := token.Claims.(*DownloadClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid download token")
	}
	return claims, nil
}
