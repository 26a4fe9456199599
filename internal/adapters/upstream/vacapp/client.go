package vacapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"herd-analytics/internal/domain/herd"
	"herd-analytics/internal/middleware"
	"herd-analytics/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("vacapp client not configured")
	ErrUnauthorized  = errors.New("vacapp unauthorized")
	ErrUpstream      = errors.New("vacapp upstream error")
)

// Paths del backend. Algunos despliegues exponen bovinos como /cattle.
var (
	animalPaths  = []string{"/bovines", "/cattle"}
	vaccinePaths = []string{"/vaccines"}
	stablePaths  = []string{"/stables"}
)

// Config del cliente de la API de ganado.
// BaseURL incluye el prefijo de versión, p.ej. https://host/api/v1.
type Config struct {
	BaseURL string

	// Token de servicio. Si está vacío se reenvía el token del request entrante.
	Token string

	Timeout time.Duration

	// Opcional (tests).
	Transport http.RoundTripper
}

// Client implementa herd.Repository contra la API REST.
type Client struct {
	http  *httpclient.Client
	token string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, ErrNotConfigured
	}

	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	hc := httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
	hc.BaseURL = strings.TrimRight(base, "/")

	return &Client{
		http:  hc,
		token: strings.TrimSpace(cfg.Token),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// Formatos del backend (camelCase).
type bovineDTO struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Gender    string   `json:"gender"`
	BirthDate string   `json:"birthDate"`
	Breed     string   `json:"breed"`
	Location  string   `json:"location"`
	StableID  int      `json:"stableId"`
	Weight    *float64 `json:"weight"`
}

type vaccineDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	VaccineType string `json:"vaccineType"`
	VaccineDate string `json:"vaccineDate"`
	BovineID    int    `json:"bovineId"`
}

type stableDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

func (c *Client) ListAnimals(ctx context.Context) ([]herd.Animal, error) {
	var raw []bovineDTO
	if err := c.get(ctx, animalPaths, &raw); err != nil {
		return nil, err
	}

	out := make([]herd.Animal, 0, len(raw))
	for _, b := range raw {
		out = append(out, herd.Animal{
			ID:        b.ID,
			Name:      b.Name,
			Breed:     b.Breed,
			Gender:    b.Gender,
			BirthDate: b.BirthDate,
			Weight:    b.Weight,
			StableID:  b.StableID,
		})
	}
	return out, nil
}

func (c *Client) ListVaccines(ctx context.Context) ([]herd.Vaccine, error) {
	var raw []vaccineDTO
	if err := c.get(ctx, vaccinePaths, &raw); err != nil {
		return nil, err
	}

	out := make([]herd.Vaccine, 0, len(raw))
	for _, v := range raw {
		out = append(out, herd.Vaccine{
			ID:       v.ID,
			Name:     v.Name,
			Type:     v.VaccineType,
			Date:     v.VaccineDate,
			AnimalID: v.BovineID,
		})
	}
	return out, nil
}

func (c *Client) ListStables(ctx context.Context) ([]herd.Stable, error) {
	var raw []stableDTO
	if err := c.get(ctx, stablePaths, &raw); err != nil {
		return nil, err
	}

	out := make([]herd.Stable, 0, len(raw))
	for _, s := range raw {
		out = append(out, herd.Stable{ID: s.ID, Name: s.Name, Limit: s.Limit})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, paths []string, out any) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	token := c.token
	if token == "" {
		token, _ = middleware.TokenFromContext(ctx)
	}
	var headers map[string]string
	if token != "" {
		headers = map[string]string{"Authorization": "Bearer " + token}
	}

	err := c.http.GetJSONFallback(ctx, paths, headers, out)
	if err == nil {
		return nil
	}
	switch httpclient.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
