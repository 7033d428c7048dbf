package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIdentityResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "user header", headers: map[string]string{"X-User-Id": "user-1"}, want: "user-1"},
		{name: "guest header", headers: map[string]string{"X-Guest-Id": "g-7"}, want: "guest:g-7"},
		{name: "user wins over guest", headers: map[string]string{"X-User-Id": "user-1", "X-Guest-Id": "g-7"}, want: "user-1"},
		{name: "anonymous", headers: nil, want: "anonymous"},
		{name: "blank header is anonymous", headers: map[string]string{"X-User-Id": "   "}, want: "anonymous"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			r := gin.New()
			r.Use(Identity())
			r.GET("/x", func(c *gin.Context) {
				got = UserIDFromContext(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Fatalf("user id = %q, want %q", got, tt.want)
			}
		})
	}
}
