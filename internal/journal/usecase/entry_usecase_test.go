package usecase_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"travel-journal/internal/journal/domain/model"
	"travel-journal/internal/journal/usecase"
	"travel-journal/internal/media"
	apperrors "travel-journal/internal/shared/errors"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// Mock entry repository
type mockEntryRepository struct {
	mock.Mock
}

func (m *mockEntryRepository) List(ctx context.Context, userID, tripID string) ([]*model.Entry, error) {
	args := m.Called(ctx, userID, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Entry), args.Error(1)
}

func (m *mockEntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockEntryRepository) Update(ctx context.Context, userID, id string, update model.EntryUpdate) (*model.Entry, error) {
	args := m.Called(ctx, userID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *mockEntryRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// fakeUploader records the upload and returns a fixed host-assigned URL.
type fakeUploader struct {
	calls int
	url   string
}

func (f *fakeUploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f.calls++
	return f.url, nil
}

// makeFileHeader builds a real multipart.FileHeader the way a request would.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(int64(body.Len()) + 1024)
	require.NoError(t, err)
	return form.File["image"][0]
}

type EntryUsecaseTestSuite struct {
	suite.Suite
	mockRepo *mockEntryRepository
	uploader *fakeUploader
	usecase  *usecase.EntryUsecase
}

func (suite *EntryUsecaseTestSuite) SetupTest() {
	suite.mockRepo = &mockEntryRepository{}
	suite.uploader = &fakeUploader{url: "https://media.example.com/hosted.jpg"}
	resolver := media.NewResolver(suite.uploader)
	suite.usecase = usecase.NewEntryUsecase(suite.mockRepo, resolver, zap.NewNop())
}

func (suite *EntryUsecaseTestSuite) TestCreate_Success() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, mock.MatchedBy(func(entry *model.Entry) bool {
		return entry.UserID == "owner-1" && entry.Title == "Day one" &&
			entry.Content == "Landed in Tokyo" && entry.TripID == "trip-1"
	})).Return(nil)

	entry, err := suite.usecase.Create(ctx, "owner-1", usecase.CreateEntryRequest{
		Title:   "Day one",
		Content: "Landed in Tokyo",
		Date:    "2024-05-01",
		TripID:  "trip-1",
	}, nil)

	suite.Require().NoError(err)
	suite.Equal("owner-1", entry.UserID)
}

func (suite *EntryUsecaseTestSuite) TestCreate_TripAssociationOptional() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, mock.MatchedBy(func(entry *model.Entry) bool {
		return entry.TripID == ""
	})).Return(nil)

	_, err := suite.usecase.Create(ctx, "owner-1", usecase.CreateEntryRequest{
		Title:   "Loose note",
		Content: "Not tied to a trip",
		Date:    "2024-05-02",
	}, nil)

	suite.NoError(err)
}

func (suite *EntryUsecaseTestSuite) TestCreate_MissingContent() {
	ctx := context.Background()

	_, err := suite.usecase.Create(ctx, "owner-1", usecase.CreateEntryRequest{
		Title: "Day one",
		Date:  "2024-05-01",
	}, nil)

	suite.True(apperrors.IsValidation(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *EntryUsecaseTestSuite) TestCreate_UploadedFileWinsOverURL() {
	ctx := context.Background()
	file := makeFileHeader(suite.T(), "photo.jpg", []byte("jpeg-bytes"))

	suite.mockRepo.On("Create", ctx, mock.MatchedBy(func(entry *model.Entry) bool {
		return entry.ImageURL == "https://media.example.com/hosted.jpg"
	})).Return(nil)

	entry, err := suite.usecase.Create(ctx, "owner-1", usecase.CreateEntryRequest{
		Title:    "Day one",
		Content:  "Landed in Tokyo",
		Date:     "2024-05-01",
		ImageURL: "https://example.com/ignored.jpg",
	}, file)

	suite.Require().NoError(err)
	suite.Equal(1, suite.uploader.calls)
	suite.Equal("https://media.example.com/hosted.jpg", entry.ImageURL)
}

func (suite *EntryUsecaseTestSuite) TestUpdate_ImageUntouchedWithoutNewAttachment() {
	ctx := context.Background()
	title := "Day two"

	suite.mockRepo.On("Update", ctx, "owner-1", "e1", mock.MatchedBy(func(u model.EntryUpdate) bool {
		return u.ImageURL == nil
	})).Return(&model.Entry{ID: "e1", Title: "Day two", UserID: "owner-1"}, nil)

	_, err := suite.usecase.Update(ctx, "owner-1", "e1", usecase.UpdateEntryRequest{Title: &title}, nil)

	suite.Require().NoError(err)
	suite.Equal(0, suite.uploader.calls)
}

func (suite *EntryUsecaseTestSuite) TestUpdate_NewFileReResolves() {
	ctx := context.Background()
	file := makeFileHeader(suite.T(), "photo.jpg", []byte("jpeg-bytes"))

	suite.mockRepo.On("Update", ctx, "owner-1", "e1", mock.MatchedBy(func(u model.EntryUpdate) bool {
		return u.ImageURL != nil && *u.ImageURL == "https://media.example.com/hosted.jpg"
	})).Return(&model.Entry{ID: "e1", UserID: "owner-1"}, nil)

	_, err := suite.usecase.Update(ctx, "owner-1", "e1", usecase.UpdateEntryRequest{}, file)

	suite.Require().NoError(err)
	suite.Equal(1, suite.uploader.calls)
}

func (suite *EntryUsecaseTestSuite) TestUpdate_ForeignIDIsNotFound() {
	ctx := context.Background()
	title := "Hijack attempt"

	suite.mockRepo.On("Update", ctx, "owner-2", "e1", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("entry"))

	_, err := suite.usecase.Update(ctx, "owner-2", "e1", usecase.UpdateEntryRequest{Title: &title}, nil)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *EntryUsecaseTestSuite) TestList_FilteredByTrip() {
	ctx := context.Background()
	entries := []*model.Entry{{ID: "e1", TripID: "trip-1", UserID: "owner-1"}}

	suite.mockRepo.On("List", ctx, "owner-1", "trip-1").Return(entries, nil)

	got, err := suite.usecase.List(ctx, "owner-1", "trip-1")
	suite.Require().NoError(err)
	suite.Equal(entries, got)
}

func (suite *EntryUsecaseTestSuite) TestDelete_IsIdempotent() {
	ctx := context.Background()

	suite.mockRepo.On("Delete", ctx, "owner-1", "e1").Return(nil)

	suite.NoError(suite.usecase.Delete(ctx, "owner-1", "e1"))
	suite.NoError(suite.usecase.Delete(ctx, "owner-1", "e1"))
}

func TestEntryUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(EntryUsecaseTestSuite))
}
