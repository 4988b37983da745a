package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studyapp/studygroup/internal/apperr"
	"github.com/studyapp/studygroup/internal/models"
	"github.com/studyapp/studygroup/internal/repository"
)

// StudyGroupHandler manages study group endpoints.
type StudyGroupHandler struct {
	repo *repository.StudyGroupRepository
}

// NewStudyGroupHandler constructs a StudyGroupHandler.
func NewStudyGroupHandler(repo *repository.StudyGroupRepository) *StudyGroupHandler {
	return &StudyGroupHandler{repo: repo}
}

// createStudyGroupRequest defines the request body for group creation.
type createStudyGroupRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

// Create creates a new study group. Only one group per subject is
// allowed; names must be 5 to 30 characters.
func (h *StudyGroupHandler) Create(c *gin.Context) {
	var body createStudyGroupRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Study group data is required."})
		return
	}

	if strings.TrimSpace(body.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Study group name is required."})
		return
	}

	subject, errSubject := models.ParseSubject(body.Subject)
	if errSubject != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.MessageOf(errSubject)})
		return
	}

	group, errCreate := h.repo.Create(c.Request.Context(), body.Name, subject)
	if errCreate != nil {
		writeError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// List returns study groups with optional subject filter and sort order.
// sortOrder "asc"/"oldest" is oldest first; "desc"/"newest" or omitted
// is newest first.
func (h *StudyGroupHandler) List(c *gin.Context) {
	groups, errList := h.repo.List(c.Request.Context(), c.Query("subject"), c.Query("sortOrder"))
	if errList != nil {
		writeError(c, errList)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// Get returns a study group by ID.
func (h *StudyGroupHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	group, errGet := h.repo.GetByID(c.Request.Context(), id)
	if errGet != nil {
		writeError(c, errGet)
		return
	}
	c.JSON(http.StatusOK, group)
}

// Join adds a user to a study group.
func (h *StudyGroupHandler) Join(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	if errJoin := h.repo.Join(c.Request.Context(), groupID, userID); errJoin != nil {
		// A duplicate membership is a caller error, not a 409; only
		// duplicate-subject creation surfaces as a conflict status.
		if apperr.KindOf(errJoin) == apperr.KindConflict {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperr.MessageOf(errJoin)})
			return
		}
		writeError(c, errJoin)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User " + strconv.FormatUint(userID, 10) + " successfully joined study group " + strconv.FormatUint(groupID, 10) + ".",
	})
}

// Leave removes a user from a study group.
func (h *StudyGroupHandler) Leave(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	if errLeave := h.repo.Leave(c.Request.Context(), groupID, userID); errLeave != nil {
		writeError(c, errLeave)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User " + strconv.FormatUint(userID, 10) + " successfully left study group " + strconv.FormatUint(groupID, 10) + ".",
	})
}

// Delete removes a study group and its memberships.
func (h *StudyGroupHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if errDelete := h.repo.Delete(c.Request.Context(), id); errDelete != nil {
		writeError(c, errDelete)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam parses a numeric path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if errParse != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// writeError maps an error kind to the externally visible outcome. This
// is the only place repository errors become HTTP statuses.
func writeError(c *gin.Context, err error) {
	message := apperr.MessageOf(err)
	switch apperr.KindOf(err) {
	case apperr.KindInvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": message})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
