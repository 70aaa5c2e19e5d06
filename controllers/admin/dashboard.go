package adminController

import (
	"fluency/database"
	"fluency/middleware"
	"fluency/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetDashboardStats aggregates marketplace totals for the admin panel:
// user and instructor counts, approved listings, enrollment volume and
// revenue, plus today's and this week's enrollment activity.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalInstructors, approvedCourses, totalEnrollments int64
	var pendingSeatAdjustments int64

	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.User{}).Where("role = ?", models.RoleInstructor).Count(&totalInstructors)
	db.Model(&models.Course{}).Where("status = ?", models.CourseStatusApproved).Count(&approvedCourses)
	db.Model(&models.Payment{}).Count(&totalEnrollments)
	db.Model(&models.Payment{}).Where("seat_adjusted = ?", false).Count(&pendingSeatAdjustments)

	var totalRevenue float64
	if err := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	var enrollmentsToday, enrollmentsThisWeek int64
	db.Model(&models.Payment{}).
		Where("paid_at >= ?", now.BeginningOfDay()).
		Count(&enrollmentsToday)
	db.Model(&models.Payment{}).
		Where("paid_at >= ?", now.BeginningOfWeek()).
		Count(&enrollmentsThisWeek)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":              totalUsers,
		"total_instructors":        totalInstructors,
		"approved_courses":         approvedCourses,
		"total_enrollments":        totalEnrollments,
		"total_revenue":            totalRevenue,
		"enrollments_today":        enrollmentsToday,
		"enrollments_this_week":    enrollmentsThisWeek,
		"pending_seat_adjustments": pendingSeatAdjustments,
	})
}
