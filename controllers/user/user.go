package userController

import (
	"fluency/database"
	"fluency/middleware"
	"fluency/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpsertUser saves a user profile keyed by email. Registration and login
// both land here: the first call creates the record, later calls refresh
// the profile fields. The stored role is never touched by this route.
func UpsertUser(c *fiber.Ctx) error {
	email := c.Locals("paramEmail").(string)
	reqData := c.Locals("validatedUser").(*struct {
		Name     string `json:"name"`
		PhotoURL string `json:"photo_url"`
		Role     string `json:"role"`
	})

	db := database.Database.Db

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:     reqData.Name,
			Email:    email,
			PhotoURL: reqData.PhotoURL,
			Role:     reqData.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating user %s: %v", email, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User created!", user)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user!", nil)
	}

	updates := map[string]interface{}{
		"name":      reqData.Name,
		"photo_url": reqData.PhotoURL,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Error updating user %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated!", user)
}

// GetAllUsers lists every user; admin only
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// checkRoleFlag answers the self-check endpoints with {role: bool}.
// Unknown emails simply report false; this endpoint leaks nothing.
func checkRoleFlag(c *fiber.Ctx, required string) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": false})
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": false})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": user.Role == required})
}

// CheckAdminRole handles GET /users/admin/:email
func CheckAdminRole(c *fiber.Ctx) error {
	return checkRoleFlag(c, models.RoleAdmin)
}

// CheckInstructorRole handles GET /users/instructor/:email
func CheckInstructorRole(c *fiber.Ctx) error {
	return checkRoleFlag(c, models.RoleInstructor)
}

// SetUserRole changes a user's stored role; admin only. Takes effect on
// the target's very next guarded request since roles are re-checked per
// request.
func SetUserRole(c *fiber.Ctx) error {
	email := c.Locals("paramEmail").(string)
	role := c.Locals("validatedRole").(string)

	result := database.Database.Db.
		Model(&models.User{}).
		Where("email = ?", email).
		Update("role", role)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", fiber.Map{
		"email": email,
		"role":  role,
	})
}

// DeleteUser removes a user record entirely; admin only
func DeleteUser(c *fiber.Ctx) error {
	email := c.Locals("paramEmail").(string)

	result := database.Database.Db.
		Unscoped().
		Where("email = ?", email).
		Delete(&models.User{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted!", fiber.Map{
		"deleted": result.RowsAffected,
	})
}

// GetInstructors lists all instructors
func GetInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.
		Where("role = ?", models.RoleInstructor).
		Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructors)
}

// GetPopularInstructors returns the top 10 instructors by enrollment
func GetPopularInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.
		Where("role = ?", models.RoleInstructor).
		Order("enroll desc").
		Limit(10).
		Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular instructors fetched successfully!", instructors)
}
