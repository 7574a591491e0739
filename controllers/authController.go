package controllers

import (
	"errors"
	"net/http"

	"bakery/config"
	"bakery/models"
	"bakery/storage"
	"bakery/utils"

	"github.com/gin-gonic/gin"
)

// Login authenticates a staff member by role (the unique ID string) and
// password, answering with a JWT both as a cookie and in the body.
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := config.Store.StaffByRole(input.Role)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid role or password"})
		return
	}
	if err := utils.VerifyPassword(staff.PasswordHash, input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid role or password"})
		return
	}

	token, err := utils.GenerateToken(staff.Role, "staff")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetCookie("token", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"staff": staff.Public(),
	})
}

// RegisterStaff is the unauthenticated bootstrap: it only works while the
// staff file is empty. Further members are added through the guarded route.
func RegisterStaff(c *gin.Context) {
	var input models.AddStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Shifts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one valid shift must be provided"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	staff := models.Staff{
		Name:         input.Name,
		Role:         input.Role,
		Shifts:       input.Shifts,
		PasswordHash: hash,
	}
	if err := config.Store.BootstrapStaff(staff); err != nil {
		if errors.Is(err, storage.ErrRegistrationClosed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Registration is closed, ask a staff member to add you"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save staff member"})
		}
		return
	}
	c.JSON(http.StatusCreated, staff.Public())
}
