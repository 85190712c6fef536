package api

import (
	"net/http"

	"github.com/Tanz2024/Portfolio/auth"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// adminUserID mirrors the seeded administrator row.
const adminUserID = 1

// LoginAdmin compares the submitted credentials against the configured
// administrator by exact match (or argon2 verify when admin.password_hash
// is set) and hands back the token as an HTTP-only cross-site cookie.
func (a *API) LoginAdmin(c *gin.Context) {
	var data struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = c.ShouldBindJSON(&data)

	match := data.Username == viper.GetString("admin.username")
	if hash := viper.GetString("admin.password_hash"); hash != "" {
		ok, err := a.Argon.VerifyPasswd(data.Password, hash)
		if err != nil {
			zap.L().Error("Failed to verify admin password", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		match = match && ok
	} else {
		match = match && data.Password == viper.GetString("admin.password")
	}

	if !match {
		abortJSON(c, http.StatusBadRequest, "Invalid admin credentials")
		return
	}

	token, err := a.Auth.Issue(adminUserID, data.Username, auth.RoleAdmin)
	if err != nil {
		zap.L().Error("Failed to sign token", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		abortJSON(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "Admin login successful"})
}

// LoginUser grants the anonymous viewer identity on request, no password.
func (a *API) LoginUser(c *gin.Context) {
	token, err := a.Auth.Issue(0, "Viewer", auth.RoleViewer)
	if err != nil {
		zap.L().Error("Failed to sign token", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		abortJSON(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "User login successful"})
}

// Authenticate reports the caller's role. A missing cookie is not an error
// here: the caller is simply a viewer.
func (a *API) Authenticate(c *gin.Context) {
	tokenStr, err := c.Cookie(auth.CookieName)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"role": auth.RoleViewer})
		return
	}

	claims, err := a.Auth.Parse(tokenStr)
	if err != nil {
		abortJSON(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": claims.Role})
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", true, true)
}
