package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courselab/checkout-api/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func jsonBody(t testing.TB, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

func (app *TestApp) seedUser(t testing.TB) {
	var user domain.User
	require.NoError(t, user.Password.Set(TestUserPassword))

	_, err := app.DB.Exec(context.Background(),
		`INSERT INTO users (first_name, last_name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING`,
		"John", "Doe", TestUserEmail, user.Password.Hash,
	)
	require.NoError(t, err)
}

func (app *TestApp) seedCourse(t testing.TB) {
	_, err := app.DB.Exec(context.Background(),
		`INSERT INTO courses (id, description, long_description, price)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		TestCourseId, TestCourseDescription, TestCourseLongDescription, TestCoursePrice,
	)
	require.NoError(t, err)
}

// authenticatedUserCookies seeds the test user and logs it in, returning the
// session cookie to attach to subsequent requests.
func (app *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	app.seedUser(t)

	body := jsonBody(t, map[string]string{
		"email":    TestUserEmail,
		"password": TestUserPassword,
	})

	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode, "login of the seeded test user must succeed")

	return res.Cookies()
}
