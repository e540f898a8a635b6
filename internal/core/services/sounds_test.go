package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/testutil"
)

func TestSoundService_Upload(t *testing.T) {
	projects := new(testutil.MockProjectRepo)
	training := new(testutil.MockTrainingRepo)
	store := new(testutil.MockSoundStore)
	svc := NewSoundService(projects, training, store, 1024)

	project := newProject(domain.ProjectTypeSounds, "clap")
	data := []byte("RIFF....WAVE")
	projects.On("GetByID", mock.Anything, testOwner, project.ID).Return(project, nil)
	store.On("Put", mock.Anything, mock.AnythingOfType("*domain.Sound"), data).Return(nil)
	training.On("Create", mock.Anything, mock.AnythingOfType("*domain.TrainingItem")).Return(nil)

	sound, err := svc.Upload(context.Background(), testOwner, project.ID, "clap", "audio/wav", data)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), sound.Size)
	assert.Equal(t, "audio/wav", sound.ContentType)

	item := training.Calls[0].Arguments.Get(1).(*domain.TrainingItem)
	assert.Equal(t, sound.ID.String(), item.Data)
}

func TestSoundService_Upload_TooLarge(t *testing.T) {
	svc := NewSoundService(new(testutil.MockProjectRepo), new(testutil.MockTrainingRepo), new(testutil.MockSoundStore), 4)

	_, err := svc.Upload(context.Background(), testOwner, uuid.New(), "clap", "", []byte("12345"))
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
}

func TestSoundService_Upload_Empty(t *testing.T) {
	svc := NewSoundService(new(testutil.MockProjectRepo), new(testutil.MockTrainingRepo), new(testutil.MockSoundStore), 4)

	_, err := svc.Upload(context.Background(), testOwner, uuid.New(), "clap", "", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPayload)
}

func TestSoundService_Upload_WrongProjectType(t *testing.T) {
	projects := new(testutil.MockProjectRepo)
	svc := NewSoundService(projects, new(testutil.MockTrainingRepo), new(testutil.MockSoundStore), 1024)

	project := newProject(domain.ProjectTypeText, "clap")
	projects.On("GetByID", mock.Anything, testOwner, project.ID).Return(project, nil)

	_, err := svc.Upload(context.Background(), testOwner, project.ID, "clap", "", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrProjectTypeNotSupported)
}

func TestSoundService_Upload_RemovesOrphan(t *testing.T) {
	projects := new(testutil.MockProjectRepo)
	training := new(testutil.MockTrainingRepo)
	store := new(testutil.MockSoundStore)
	svc := NewSoundService(projects, training, store, 1024)

	project := newProject(domain.ProjectTypeSounds, "clap")
	projects.On("GetByID", mock.Anything, testOwner, project.ID).Return(project, nil)
	store.On("Put", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("Delete", mock.Anything, project.ID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	dbErr := errors.New("db down")
	training.On("Create", mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.Upload(context.Background(), testOwner, project.ID, "clap", "", []byte("x"))
	assert.ErrorIs(t, err, dbErr)
	store.AssertExpectations(t)
}

func TestSoundService_Download(t *testing.T) {
	projects := new(testutil.MockProjectRepo)
	store := new(testutil.MockSoundStore)
	svc := NewSoundService(projects, new(testutil.MockTrainingRepo), store, 1024)

	project := newProject(domain.ProjectTypeSounds, "clap")
	soundID := uuid.New()
	sound := &domain.Sound{ID: soundID, ProjectID: project.ID, ContentType: "audio/wav"}
	projects.On("GetByID", mock.Anything, testOwner, project.ID).Return(project, nil)
	store.On("Get", mock.Anything, project.ID, soundID).Return(sound, []byte("abc"), nil)

	got, data, err := svc.Download(context.Background(), testOwner, project.ID, soundID)
	require.NoError(t, err)
	assert.Equal(t, sound, got)
	assert.Equal(t, []byte("abc"), data)
}

func TestSoundService_Download_OtherStudent(t *testing.T) {
	projects := new(testutil.MockProjectRepo)
	store := new(testutil.MockSoundStore)
	svc := NewSoundService(projects, new(testutil.MockTrainingRepo), store, 1024)

	other := domain.Owner{ClassID: testOwner.ClassID, UserID: "someone-else"}
	projectID := uuid.New()
	projects.On("GetByID", mock.Anything, other, projectID).Return(nil, domain.ErrProjectNotFound)

	_, _, err := svc.Download(context.Background(), other, projectID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
