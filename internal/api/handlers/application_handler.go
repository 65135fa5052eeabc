// internal/api/handlers/application_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"swastik-transport-api-server/internal/models"
	"swastik-transport-api-server/internal/refid"
	"swastik-transport-api-server/internal/repository"
)

// The resume attachment must be a PDF no larger than 5MB.
const maxResumeSize = 5 << 20

type ApplicationHandler struct {
	Store ApplicationStore
	Files FileStore
	Refs  *refid.Generator
}

// CreateApplication accepts the multipart job application form. All
// fields except expectedSalary and the resume attachment are required.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	required := []string{
		"jobId", "firstName", "lastName", "email", "phone", "address",
		"experience", "education", "skills", "coverLetter", "availableFrom",
	}
	var missing []string
	for _, field := range required {
		if c.PostForm(field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		})
		return
	}

	jobID, err := strconv.Atoi(c.PostForm("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId must be a number"})
		return
	}

	expectedSalary := 0
	if v := c.PostForm("expectedSalary"); v != "" {
		expectedSalary, err = strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expectedSalary must be a number"})
			return
		}
	}

	resumePath := ""
	file, header, err := c.Request.FormFile("resume")
	if err == nil {
		defer file.Close()

		if header.Size > maxResumeSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Maximum size is 5MB."})
			return
		}
		contentType := header.Header.Get("Content-Type")
		if contentType != "application/pdf" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed for resume"})
			return
		}

		resumePath, err = h.Files.Save(c.Request.Context(), file, header.Filename, contentType)
		if err != nil {
			log.Printf("Error storing resume: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
			return
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume attachment"})
		return
	}

	application := &models.JobApplication{
		ApplicationID:  h.Refs.Generate("APP"),
		JobID:          jobID,
		FirstName:      c.PostForm("firstName"),
		LastName:       c.PostForm("lastName"),
		Email:          c.PostForm("email"),
		Phone:          c.PostForm("phone"),
		Address:        c.PostForm("address"),
		Experience:     c.PostForm("experience"),
		Education:      c.PostForm("education"),
		Skills:         c.PostForm("skills"),
		ResumePath:     resumePath,
		CoverLetter:    c.PostForm("coverLetter"),
		ExpectedSalary: expectedSalary,
		AvailableFrom:  c.PostForm("availableFrom"),
	}

	err = h.Store.Insert(c.Request.Context(), application)
	if errors.Is(err, repository.ErrDuplicate) {
		application.ApplicationID = h.Refs.Generate("APP")
		err = h.Store.Insert(c.Request.Context(), application)
	}
	if err != nil {
		log.Printf("Error saving job application: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applicationId": application.ApplicationID})
}
