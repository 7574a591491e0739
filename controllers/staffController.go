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

func AddStaff(c *gin.Context) {
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
	if err := config.Store.AddStaff(staff); err != nil {
		if errors.Is(err, storage.ErrRoleTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Role " + input.Role + " already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save staff member"})
		}
		return
	}
	c.JSON(http.StatusCreated, staff.Public())
}

func ListStaff(c *gin.Context) {
	records := config.Store.Staff()
	out := make([]models.Staff, 0, len(records))
	for _, st := range records {
		out = append(out, st.Public())
	}
	c.JSON(http.StatusOK, out)
}

func DeleteStaff(c *gin.Context) {
	role := c.Param("role")

	err := config.Store.DeleteStaff(role)
	if err != nil {
		if errors.Is(err, storage.ErrStaffNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
