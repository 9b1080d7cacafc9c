package Controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"TaskControl/Models"
)

func setupTaskApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	require.NoError(t, db.Create(&Models.Collaborator{Name: "Ana"}).Error)

	controller := NewTaskController(db)
	app := fiber.New()
	app.Get("/api/tasks", controller.GetTasks)
	app.Get("/api/tasks/finished", controller.GetFinishedTasks)
	app.Post("/api/tasks", controller.CreateTask)
	app.Put("/api/tasks/:id", controller.UpdateTask)
	app.Post("/api/tasks/:id/start", controller.StartTask)
	app.Post("/api/tasks/:id/finish", controller.FinishTask)
	app.Post("/api/tasks/:id/archive", controller.ArchiveTask)
	app.Delete("/api/tasks/:id", controller.DeleteTask)
	return app, db
}

func createTask(t *testing.T, app *fiber.App) Models.Task {
	t.Helper()

	var task Models.Task
	resp := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"description": "File VAT return",
		"assignee":    "Ana",
		"dueDate":     "2024-04-30",
	}, &task)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return task
}

func TestCreateTask(t *testing.T) {
	app, _ := setupTaskApp(t)

	task := createTask(t, app)
	assert.Equal(t, Models.StatusNotStarted, task.Status)
	assert.Equal(t, "Ana", task.Assignee)
	assert.Nil(t, task.StartedAt)
	assert.Nil(t, task.FinishedAt)
	assert.Nil(t, task.ElapsedMinutes)
	assert.False(t, task.Archived)
}

func TestCreateTaskRejectsUnknownCollaborator(t *testing.T) {
	app, _ := setupTaskApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"description": "File VAT return",
		"assignee":    "Nobody",
		"dueDate":     "2024-04-30",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTaskRejectsBadDueDate(t *testing.T) {
	app, _ := setupTaskApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"description": "File VAT return",
		"assignee":    "Ana",
		"dueDate":     "30/04/2024",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStartAndFinishTask(t *testing.T) {
	app, _ := setupTaskApp(t)
	task := createTask(t, app)

	var started Models.Task
	resp := doJSON(t, app, http.MethodPost, taskPath(task.ID, "/start"), nil, &started)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, Models.StatusInProgress, started.Status)
	require.NotNil(t, started.StartedAt)
	assert.Nil(t, started.FinishedAt)

	var finished Models.Task
	resp = doJSON(t, app, http.MethodPost, taskPath(task.ID, "/finish"), nil, &finished)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, Models.StatusFinished, finished.Status)
	require.NotNil(t, finished.FinishedAt)
	require.NotNil(t, finished.ElapsedMinutes)
	assert.GreaterOrEqual(t, *finished.ElapsedMinutes, 0)
}

func TestStartTwiceIsRejected(t *testing.T) {
	app, _ := setupTaskApp(t)
	task := createTask(t, app)

	resp := doJSON(t, app, http.MethodPost, taskPath(task.ID, "/start"), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, taskPath(task.ID, "/start"), nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestFinishWithoutStartIsRejected(t *testing.T) {
	app, db := setupTaskApp(t)
	task := createTask(t, app)

	// Straight from NotStarted
	resp := doJSON(t, app, http.MethodPost, taskPath(task.ID, "/finish"), nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// InProgress with a missing start time, as left by an out-of-band edit
	broken := Models.Task{
		Description: "Broken row",
		Assignee:    "Ana",
		DueDate:     "2024-04-30",
		Status:      Models.StatusInProgress,
	}
	require.NoError(t, db.Create(&broken).Error)
	resp = doJSON(t, app, http.MethodPost, taskPath(broken.ID, "/finish"), nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var reloaded Models.Task
	require.NoError(t, db.First(&reloaded, broken.ID).Error)
	assert.Equal(t, Models.StatusInProgress, reloaded.Status)
	assert.Nil(t, reloaded.FinishedAt)
}

func TestUpdateTaskKeepsFrozenDuration(t *testing.T) {
	app, db := setupTaskApp(t)
	task := createTask(t, app)

	doJSON(t, app, http.MethodPost, taskPath(task.ID, "/start"), nil, nil)
	doJSON(t, app, http.MethodPost, taskPath(task.ID, "/finish"), nil, nil)

	var beforeEdit Models.Task
	require.NoError(t, db.First(&beforeEdit, task.ID).Error)
	require.NotNil(t, beforeEdit.ElapsedMinutes)

	var updated Models.Task
	resp := doJSON(t, app, http.MethodPut, taskPath(task.ID, ""), fiber.Map{
		"description": "File VAT return (corrected)",
		"assignee":    "Ana",
		"dueDate":     "2024-05-15",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "File VAT return (corrected)", updated.Description)
	assert.Equal(t, "2024-05-15", updated.DueDate)
	assert.Equal(t, Models.StatusFinished, updated.Status)
	require.NotNil(t, updated.ElapsedMinutes)
	assert.Equal(t, *beforeEdit.ElapsedMinutes, *updated.ElapsedMinutes)
}

func TestArchiveTask(t *testing.T) {
	app, _ := setupTaskApp(t)
	task := createTask(t, app)

	// Only finished tasks can be archived
	resp := doJSON(t, app, http.MethodPost, taskPath(task.ID, "/archive"), nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	doJSON(t, app, http.MethodPost, taskPath(task.ID, "/start"), nil, nil)
	doJSON(t, app, http.MethodPost, taskPath(task.ID, "/finish"), nil, nil)

	var archived Models.Task
	resp = doJSON(t, app, http.MethodPost, taskPath(task.ID, "/archive"), nil, &archived)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, archived.Archived)
	assert.Equal(t, Models.StatusFinished, archived.Status)

	// The finished listing hides archived tasks
	var listed []Models.Task
	resp = doJSON(t, app, http.MethodGet, "/api/tasks/finished", nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listed)
}

func TestDeleteTask(t *testing.T) {
	app, db := setupTaskApp(t)
	task := createTask(t, app)

	resp := doJSON(t, app, http.MethodDelete, taskPath(task.ID, ""), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&Models.Task{}).Count(&count)
	assert.Zero(t, count)
}

func taskPath(id uint, suffix string) string {
	return fmt.Sprintf("/api/tasks/%d%s", id, suffix)
}
