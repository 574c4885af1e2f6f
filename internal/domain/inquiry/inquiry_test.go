package inquiry

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ServiceInquiry{}))
	return db
}

func TestCreateInquiryDefaultsToPending(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.CreateInquiry(ctx, CreateInquiryInput{
		ServiceType:  "plugin_development",
		Message:      "Need a plugin",
		ContactEmail: "a@b.com",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, created.Status)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	second, err := svc.CreateInquiry(ctx, CreateInquiryInput{
		ServiceType:  "website_development",
		Message:      "Need a site",
		ContactEmail: "c@d.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID, "ids must be freshly assigned")
}

func TestListInquiriesInsertionOrder(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		_, err := svc.CreateInquiry(ctx, CreateInquiryInput{
			ServiceType:  "plugin_development",
			Message:      msg,
			ContactEmail: "a@b.com",
		})
		require.NoError(t, err)
	}

	inquiries, err := svc.ListInquiries(ctx)
	require.NoError(t, err)
	require.Len(t, inquiries, 3)
	assert.Equal(t, "first", inquiries[0].Message)
	assert.Equal(t, "second", inquiries[1].Message)
	assert.Equal(t, "third", inquiries[2].Message)
}

func TestUpdateInquiryStatus(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.CreateInquiry(ctx, CreateInquiryInput{
		ServiceType:  "plugin_development",
		Message:      "Need a plugin",
		ContactEmail: "a@b.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateInquiryStatus(ctx, created.ID, StatusCompleted))

	// Re-reading with no further writes is idempotent.
	for i := 0; i < 2; i++ {
		inquiries, err := svc.ListInquiries(ctx)
		require.NoError(t, err)
		require.Len(t, inquiries, 1)
		assert.Equal(t, StatusCompleted, inquiries[0].Status)
	}
}

func TestUpdateInquiryStatusMissingID(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))

	err := svc.UpdateInquiryStatus(context.Background(), 9999, StatusContacted)
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestUpdateInquiryStatusInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	created, err := svc.CreateInquiry(ctx, CreateInquiryInput{
		ServiceType:  "plugin_development",
		Message:      "Need a plugin",
		ContactEmail: "a@b.com",
	})
	require.NoError(t, err)

	err = svc.UpdateInquiryStatus(ctx, created.ID, InquiryStatus("nonsense"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Row untouched.
	inquiries, err := svc.ListInquiries(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, inquiries[0].Status)
}

func TestGetStats(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	// Empty table reports zero counts, not an error.
	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	var ids []uint
	for i := 0; i < 4; i++ {
		created, err := svc.CreateInquiry(ctx, CreateInquiryInput{
			ServiceType:  "plugin_development",
			Message:      "msg",
			ContactEmail: "a@b.com",
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	require.NoError(t, svc.UpdateInquiryStatus(ctx, ids[0], StatusCompleted))
	require.NoError(t, svc.UpdateInquiryStatus(ctx, ids[1], StatusContacted))

	stats, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 4, Pending: 2, Completed: 1}, stats)
}
