package courseController

import (
	"fluency/database"
	"fluency/middleware"
	"fluency/models"
	"github.com/gofiber/fiber/v2"

	courseValidator "fluency/validators/course"
)

// GetAllCourses lists every course including pending and rejected ones;
// admin only
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetApprovedCourses lists publicly visible courses
func GetApprovedCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("status = ?", models.CourseStatusApproved).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetPopularCourses returns the top 6 approved courses by enrollment
func GetPopularCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("status = ?", models.CourseStatusApproved).
		Order("enroll desc").
		Limit(6).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular courses fetched successfully!", courses)
}

// GetCourseByID returns a single course listing
func GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse saves a new listing for the calling instructor. New
// courses always start pending and become visible once an admin
// approves them.
func CreateCourse(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	reqData := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)

	db := database.Database.Db

	var instructor models.User
	if err := db.Where("email = ?", email).First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load instructor!", nil)
	}

	course := models.Course{
		Title:           reqData.Title,
		Description:     reqData.Description,
		Image:           reqData.Image,
		InstructorName:  instructor.Name,
		InstructorEmail: instructor.Email,
		Price:           reqData.Price,
		AvailableSeats:  reqData.AvailableSeats,
		Status:          models.CourseStatusPending,
	}
	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course submitted for review!", course)
}

// GetInstructorCourses lists the calling instructor's own courses. The
// email path segment must match the token identity so one instructor
// cannot browse another's drafts.
func GetInstructorCourses(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	paramEmail := c.Locals("paramEmail").(string)

	if paramEmail != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   true,
			"message": "forbidden access",
		})
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("instructor_email = ?", email).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// UpdateCourseStatus approves or rejects a listing; admin only
func UpdateCourseStatus(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	status := c.Locals("validatedStatus").(string)

	result := database.Database.Db.
		Model(&models.Course{}).
		Where("id = ?", courseID).
		Update("status", status)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course status updated!", fiber.Map{
		"id":     courseID,
		"status": status,
	})
}

// UpdateCourseFeedback attaches admin feedback to a listing, typically
// alongside a rejection
func UpdateCourseFeedback(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	message := c.Locals("validatedFeedback").(string)

	result := database.Database.Db.
		Model(&models.Course{}).
		Where("id = ?", courseID).
		Update("feedback", message)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save feedback!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback saved!", fiber.Map{
		"id":       courseID,
		"feedback": message,
	})
}

// GetEnrolledCourses lists the courses a student has paid for, newest
// first
func GetEnrolledCourses(c *fiber.Ctx) error {
	email := c.Params("email")

	var payments []models.Payment
	if err := database.Database.Db.
		Where("student_email = ?", email).
		Order("paid_at desc").
		Preload("Course").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", payments)
}
