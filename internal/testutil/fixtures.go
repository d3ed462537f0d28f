package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/adboard/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	login    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		login:    fmt.Sprintf("test_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithLogin sets the login
func (b *UserBuilder) WithLogin(login string) *UserBuilder {
	b.login = login
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Login:        b.login,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AdBuilder creates test ads with a builder pattern
type AdBuilder struct {
	title       string
	description string
	ownerID     *uint
}

// NewAdBuilder creates a new AdBuilder with default values
func NewAdBuilder() *AdBuilder {
	return &AdBuilder{
		title:       fmt.Sprintf("test ad %s", uuid.New().String()[:8]),
		description: "a test listing",
	}
}

// WithTitle sets the title
func (b *AdBuilder) WithTitle(title string) *AdBuilder {
	b.title = title
	return b
}

// WithDescription sets the description
func (b *AdBuilder) WithDescription(description string) *AdBuilder {
	b.description = description
	return b
}

// WithOwner sets the owner
func (b *AdBuilder) WithOwner(user *domain.User) *AdBuilder {
	id := user.ID
	b.ownerID = &id
	return b
}

// Build creates the ad in the database
func (b *AdBuilder) Build(t *testing.T, db *gorm.DB) *domain.Ad {
	t.Helper()

	ad := &domain.Ad{
		Title:       b.title,
		Description: b.description,
		OwnerID:     b.ownerID,
		CreatedAt:   time.Now(),
	}

	if err := db.Create(ad).Error; err != nil {
		t.Fatalf("failed to create ad: %v", err)
	}

	return ad
}

// DoJSON sends a JSON request and returns the response
func DoJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return resp
}

// DoJSONWithToken sends a JSON request with a bearer token
func DoJSONWithToken(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return resp
}
