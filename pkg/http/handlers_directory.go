package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func (rs *RestfulServer) GetInstitutions(c *gin.Context) {
	institutions, err := rs.Fleet.ListInstitutions()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, institutions)
}

type InstitutionRequest struct {
	Name string `json:"name"`
}

var institutionRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Required(),
})

func (rs *RestfulServer) PostInstitution(c *gin.Context) {
	var req InstitutionRequest
	if err := institutionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	institution, err := rs.Fleet.CreateInstitution(req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, institution)
}

func (rs *RestfulServer) GetTeachers(c *gin.Context) {
	teachers, err := rs.Fleet.ListTeachers()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, teachers)
}

type TeacherRequest struct {
	FullName      string `json:"full_name"`
	InstitutionID string `json:"institution_id"`
}

var teacherRequestSchema = z.Struct(z.Shape{
	"FullName":      z.String().Required(),
	"InstitutionID": z.String(),
})

func (rs *RestfulServer) PostTeacher(c *gin.Context) {
	var req TeacherRequest
	if err := teacherRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	teacher, err := rs.Fleet.CreateTeacher(req.FullName, req.InstitutionID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, teacher)
}
