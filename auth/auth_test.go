package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MonMotDePasseTr0pSûr!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("MauvaisMDP", hash)
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "not-a-hash")
	req.Error(err)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	valid := RegisterRequest{
		Email:    "test@example.com",
		Fullname: "Test User",
		Password: "ComplexPass123!",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{"valid request", func(r *RegisterRequest) {}, false},
		{"invalid email", func(r *RegisterRequest) { r.Email = "notanemail" }, true},
		{"fullname too short", func(r *RegisterRequest) { r.Fullname = "x" }, true},
		{"password too short", func(r *RegisterRequest) { r.Password = "Short1!" }, true},
		{"missing digit", func(r *RegisterRequest) { r.Password = "NoDigitPassword!" }, true},
		{"missing special char", func(r *RegisterRequest) { r.Password = "NoSpecialChar123" }, true},
		{"missing uppercase", func(r *RegisterRequest) { r.Password = "nouppercase123!!" }, true},
		{"password too long", func(r *RegisterRequest) { r.Password = strings.Repeat("aB1!", 19) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := ValidateRegister(r)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
