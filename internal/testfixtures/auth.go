package testfixtures

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"
)

// AuthContext returns a context carrying a verified token with the given
// claims, the shape services see after the router's auth middleware ran.
func AuthContext(t *testing.T, employeeID, companyID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"company_id":  companyID,
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}
