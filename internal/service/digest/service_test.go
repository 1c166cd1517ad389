package digest

import (
	"context"
	"testing"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/errs"
	"gitee.com/flycash/activity-platform/internal/repository"
	"gitee.com/flycash/activity-platform/internal/repository/dao"
	activitymocks "gitee.com/flycash/activity-platform/internal/service/activity/mocks"
	testioc "gitee.com/flycash/activity-platform/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Queue(t *testing.T) {
	t.Parallel()

	const eventTime = int64(1_700_000_000)
	item := domain.MailItem{App: "files", Subject: "shared", AffectedUser: "bob", Type: "shared"}

	testCases := []struct {
		name    string
		item    domain.MailItem
		mock    func(ctrl *gomock.Controller) (*activitymocks.MockService, *activitymocks.MockUserSettings)
		wantErr error
	}{
		{
			name: "使用用户的合并间隔",
			item: item,
			mock: func(ctrl *gomock.Controller) (*activitymocks.MockService, *activitymocks.MockUserSettings) {
				svc := activitymocks.NewMockService(ctrl)
				settings := activitymocks.NewMockUserSettings(ctrl)
				settings.EXPECT().Setting(gomock.Any(), "bob", domain.SettingCategory, domain.SettingBatchTime).Return("600", nil)
				svc.EXPECT().StoreMail(gomock.Any(), gomock.Cond(func(x any) bool {
					return x.(domain.MailItem).LatestSend == eventTime+600
				})).Return(nil)
				return svc, settings
			},
		},
		{
			name: "没有设置时使用默认值",
			item: item,
			mock: func(ctrl *gomock.Controller) (*activitymocks.MockService, *activitymocks.MockUserSettings) {
				svc := activitymocks.NewMockService(ctrl)
				settings := activitymocks.NewMockUserSettings(ctrl)
				settings.EXPECT().Setting(gomock.Any(), "bob", domain.SettingCategory, domain.SettingBatchTime).Return("", nil)
				svc.EXPECT().StoreMail(gomock.Any(), gomock.Cond(func(x any) bool {
					return x.(domain.MailItem).LatestSend == eventTime+DefaultBatchTime
				})).Return(nil)
				return svc, settings
			},
		},
		{
			name: "非法设置使用默认值",
			item: item,
			mock: func(ctrl *gomock.Controller) (*activitymocks.MockService, *activitymocks.MockUserSettings) {
				svc := activitymocks.NewMockService(ctrl)
				settings := activitymocks.NewMockUserSettings(ctrl)
				settings.EXPECT().Setting(gomock.Any(), "bob", domain.SettingCategory, domain.SettingBatchTime).Return("-5", nil)
				svc.EXPECT().StoreMail(gomock.Any(), gomock.Cond(func(x any) bool {
					return x.(domain.MailItem).LatestSend == eventTime+DefaultBatchTime
				})).Return(nil)
				return svc, settings
			},
		},
		{
			name: "读取设置失败",
			item: item,
			mock: func(ctrl *gomock.Controller) (*activitymocks.MockService, *activitymocks.MockUserSettings) {
				settings := activitymocks.NewMockUserSettings(ctrl)
				settings.EXPECT().Setting(gomock.Any(), "bob", gomock.Any(), gomock.Any()).Return("", assert.AnError)
				return activitymocks.NewMockService(ctrl), settings
			},
			wantErr: errs.ErrUserSettings,
		},
		{
			name: "没有接收人",
			item: domain.MailItem{App: "files"},
			mock: func(ctrl *gomock.Controller) (*activitymocks.MockService, *activitymocks.MockUserSettings) {
				return activitymocks.NewMockService(ctrl), activitymocks.NewMockUserSettings(ctrl)
			},
			wantErr: errs.ErrInvalidParameter,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, settings := tc.mock(ctrl)
			s := NewService(svc, settings, nil)
			err := s.Queue(context.Background(), tc.item, eventTime)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_DueAndAck(t *testing.T) {
	t.Parallel()
	db := testioc.InitMemoryDB()
	require.NoError(t, dao.InitTables(db))
	repo := repository.NewMailQueueRepository(dao.NewMailQueueDAO(db))
	ctx := context.Background()

	for _, item := range []domain.MailItem{
		{AffectedUser: "bob", Type: "shared", SubjectParams: []string{"/a.txt"}, Timestamp: 10, LatestSend: 100},
		{AffectedUser: "bob", Type: "shared", SubjectParams: []string{"/b.txt"}, Timestamp: 20, LatestSend: 110},
		{AffectedUser: "alice", Type: "shared", Timestamp: 30, LatestSend: 1000},
	} {
		_, err := repo.Create(ctx, item)
		require.NoError(t, err)
	}

	ctrl := gomock.NewController(t)
	s := NewService(activitymocks.NewMockService(ctrl), activitymocks.NewMockUserSettings(ctrl), repo)

	due, err := s.Due(ctx, 500, 0)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, []string{"/a.txt"}, due[0].SubjectParams)
	assert.Equal(t, []string{"/b.txt"}, due[1].SubjectParams)

	cnt, err := s.Ack(ctx, []string{"bob"}, due[len(due)-1].Timestamp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	due, err = s.Due(ctx, 5000, 0)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "alice", due[0].AffectedUser)
}
