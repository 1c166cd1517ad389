package activity

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/errs"
	"gitee.com/flycash/activity-platform/internal/repository"
	"gitee.com/flycash/activity-platform/internal/repository/cache/local"
	"gitee.com/flycash/activity-platform/internal/repository/dao"
	activitymocks "gitee.com/flycash/activity-platform/internal/service/activity/mocks"
	testioc "gitee.com/flycash/activity-platform/internal/test/ioc"
	"github.com/DATA-DOG/go-sqlmock"
	ca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testNow = int64(1_700_000_000)

type serviceMocks struct {
	session  *activitymocks.MockSession
	types    *activitymocks.MockTypeRegistry
	filters  *activitymocks.MockFilterRegistry
	settings *activitymocks.MockUserSettings
	grouper  *activitymocks.MockGrouper
	db       sqlmock.Sqlmock
}

func newMockedService(t *testing.T, ctrl *gomock.Controller) (*service, serviceMocks) {
	t.Helper()
	db, mock := testioc.InitMockDB()
	m := serviceMocks{
		session:  activitymocks.NewMockSession(ctrl),
		types:    activitymocks.NewMockTypeRegistry(ctrl),
		filters:  activitymocks.NewMockFilterRegistry(ctrl),
		settings: activitymocks.NewMockUserSettings(ctrl),
		grouper:  activitymocks.NewMockGrouper(ctrl),
		db:       mock,
	}
	svc := NewService(
		repository.NewActivityRepository(dao.NewActivityDAO(db)),
		repository.NewMailQueueRepository(dao.NewMailQueueDAO(db)),
		local.NewNotificationTypeCache(ca.New(ca.NoExpiration, 0)),
		m.session,
		m.types,
		m.filters,
		m.settings,
		func() Grouper { return m.grouper },
	).(*service)
	svc.now = func() time.Time { return time.Unix(testNow, 0) }
	return svc, m
}

func TestService_ValidateFilter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newMockedService(t, ctrl)
	m.filters.EXPECT().IsFilterValid("files").Return(true).AnyTimes()
	m.filters.EXPECT().IsFilterValid("unknown").Return(false).AnyTimes()

	testCases := []struct {
		filter string
		want   string
	}{
		{filter: domain.FilterAll, want: domain.FilterAll},
		{filter: domain.FilterSelf, want: domain.FilterSelf},
		{filter: domain.FilterBy, want: domain.FilterBy},
		{filter: domain.FilterObject, want: domain.FilterObject},
		{filter: "files", want: "files"},
		{filter: "unknown", want: domain.FilterAll},
		{filter: "", want: domain.FilterAll},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.filter, func(t *testing.T) {
			got := svc.ValidateFilter(tc.filter)
			assert.Equal(t, tc.want, got)
			// 规范化之后再校验一次结果不变
			assert.Equal(t, got, svc.ValidateFilter(got))
		})
	}
}

func TestService_Read(t *testing.T) {
	t.Parallel()

	columns := []string{"activity_id", "app", "subject", "subjectparams", "user", "affecteduser", "timestamp", "type"}
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows(columns).
			AddRow(int64(2), "files", "shared", `["/b.txt","alice"]`, "alice", "bob", testNow, "shared").
			AddRow(int64(1), "files", "shared", `["/a.txt","alice"]`, "alice", "bob", testNow-10, "shared")
	}

	testCases := []struct {
		name   string
		query  domain.ReadQuery
		before func(m serviceMocks)
		want   []domain.ActivityGroup
	}{
		{
			name:  "没有登录用户",
			query: domain.ReadQuery{},
			before: func(m serviceMocks) {
				m.session.EXPECT().User(gomock.Any()).Return("", false)
			},
			want: []domain.ActivityGroup{},
		},
		{
			name:  "没有开启任何通知类型",
			query: domain.ReadQuery{Filter: domain.FilterAll},
			before: func(m serviceMocks) {
				m.session.EXPECT().User(gomock.Any()).Return("bob", true)
				m.settings.EXPECT().NotificationTypes(gomock.Any(), "bob", domain.MethodStream).Return([]string{"shared"}, nil)
				m.types.EXPECT().FilterNotificationTypes(gomock.Any(), []string{"shared"}, domain.FilterAll).Return([]string{})
			},
			want: []domain.ActivityGroup{},
		},
		{
			name:  "按对象过滤并且不显示自己的操作",
			query: domain.ReadQuery{User: "bob", Filter: domain.FilterObject, ObjectType: "files", ObjectID: 42},
			before: func(m serviceMocks) {
				m.settings.EXPECT().NotificationTypes(gomock.Any(), "bob", domain.MethodStream).
					Return([]string{"shared", "comments", "shared"}, nil)
				m.types.EXPECT().FilterNotificationTypes(gomock.Any(), gomock.Any(), domain.FilterObject).
					DoAndReturn(func(_ context.Context, types []string, _ string) []string {
						return types
					})
				m.settings.EXPECT().Setting(gomock.Any(), "bob", domain.SettingCategory, domain.SettingSelf).Return("false", nil)
				m.filters.EXPECT().QueryForFilter(domain.FilterObject).Return([]domain.Fragment{
					{SQL: "`app` = ?", Args: []any{"files"}},
					{SQL: "`app` = ?", Args: []any{"comments"}},
				})
				m.db.ExpectQuery("SELECT \\* FROM `activity` WHERE `affecteduser` = \\? AND `type` IN \\(\\?,\\?\\) "+
					"AND `object_type` = \\? AND `object_id` = \\? AND `user` <> \\? "+
					"AND \\(\\(`app` = \\?\\) OR \\(`app` = \\?\\)\\) ORDER BY `timestamp` DESC LIMIT \\?$").
					WithArgs("bob", "shared", "comments", "files", int64(42), "bob", "files", "comments", 30).
					WillReturnRows(rows())
				gomock.InOrder(
					m.grouper.EXPECT().SetUser("bob"),
					m.grouper.EXPECT().AddActivity(gomock.Cond(func(x any) bool {
						return x.(domain.Activity).ID == 2
					})),
					m.grouper.EXPECT().AddActivity(gomock.Cond(func(x any) bool {
						a := x.(domain.Activity)
						return a.ID == 1 && a.SubjectParams[0] == "/a.txt"
					})),
					m.grouper.EXPECT().Activities().Return([]domain.ActivityGroup{{IDs: []int64{2, 1}}}),
				)
			},
			want: []domain.ActivityGroup{{IDs: []int64{2, 1}}},
		},
		{
			name:  "只看自己的操作",
			query: domain.ReadQuery{User: "bob", Filter: domain.FilterSelf, Start: 30, Count: 10},
			before: func(m serviceMocks) {
				m.settings.EXPECT().NotificationTypes(gomock.Any(), "bob", domain.MethodStream).Return([]string{"shared"}, nil)
				m.types.EXPECT().FilterNotificationTypes(gomock.Any(), []string{"shared"}, domain.FilterSelf).Return([]string{"shared"})
				m.filters.EXPECT().QueryForFilter(domain.FilterSelf).Return(nil)
				m.db.ExpectQuery("SELECT \\* FROM `activity` WHERE `affecteduser` = \\? AND `type` = \\? "+
					"AND `user` = \\? ORDER BY `timestamp` DESC LIMIT \\? OFFSET \\?$").
					WithArgs("bob", "shared", "bob", 10, 30).
					WillReturnRows(sqlmock.NewRows(columns))
				m.grouper.EXPECT().SetUser("bob")
				m.grouper.EXPECT().Activities().Return([]domain.ActivityGroup{})
			},
			want: []domain.ActivityGroup{},
		},
		{
			name:  "他人的操作",
			query: domain.ReadQuery{User: "bob", Filter: domain.FilterBy},
			before: func(m serviceMocks) {
				m.settings.EXPECT().NotificationTypes(gomock.Any(), "bob", domain.MethodStream).Return([]string{"shared"}, nil)
				m.types.EXPECT().FilterNotificationTypes(gomock.Any(), []string{"shared"}, domain.FilterBy).Return([]string{"shared"})
				m.filters.EXPECT().QueryForFilter(domain.FilterBy).Return(nil)
				m.db.ExpectQuery("SELECT \\* FROM `activity` WHERE `affecteduser` = \\? AND `type` = \\? "+
					"AND `user` <> \\? ORDER BY `timestamp` DESC LIMIT \\?$").
					WithArgs("bob", "shared", "bob", 30).
					WillReturnRows(sqlmock.NewRows(columns))
				m.grouper.EXPECT().SetUser("bob")
				m.grouper.EXPECT().Activities().Return([]domain.ActivityGroup{})
			},
			want: []domain.ActivityGroup{},
		},
		{
			name:  "全部并且显示自己的操作",
			query: domain.ReadQuery{User: "bob", Filter: "unknown"},
			before: func(m serviceMocks) {
				m.filters.EXPECT().IsFilterValid("unknown").Return(false)
				m.settings.EXPECT().NotificationTypes(gomock.Any(), "bob", domain.MethodStream).Return([]string{"shared"}, nil)
				m.types.EXPECT().FilterNotificationTypes(gomock.Any(), []string{"shared"}, domain.FilterAll).Return([]string{"shared"})
				m.settings.EXPECT().Setting(gomock.Any(), "bob", domain.SettingCategory, domain.SettingSelf).Return("true", nil)
				m.filters.EXPECT().QueryForFilter(domain.FilterAll).Return([]domain.Fragment{
					{SQL: "`app` = ?", Args: []any{"files"}},
				})
				m.db.ExpectQuery("SELECT \\* FROM `activity` WHERE `affecteduser` = \\? AND `type` = \\? "+
					"AND \\(`app` = \\?\\) ORDER BY `timestamp` DESC LIMIT \\?$").
					WithArgs("bob", "shared", "files", 30).
					WillReturnRows(sqlmock.NewRows(columns))
				m.grouper.EXPECT().SetUser("bob")
				m.grouper.EXPECT().Activities().Return([]domain.ActivityGroup{})
			},
			want: []domain.ActivityGroup{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, m := newMockedService(t, ctrl)
			tc.before(m)

			groups, err := svc.Read(context.Background(), tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, groups)
			assert.NoError(t, m.db.ExpectationsWereMet())
		})
	}
}

func TestService_Read_SettingsError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newMockedService(t, ctrl)
	m.settings.EXPECT().NotificationTypes(gomock.Any(), "bob", domain.MethodStream).Return(nil, assert.AnError)

	_, err := svc.Read(context.Background(), domain.ReadQuery{User: "bob"})
	assert.ErrorIs(t, err, errs.ErrUserSettings)
	assert.NoError(t, m.db.ExpectationsWereMet())
}

func TestService_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		evt     domain.Event
		before  func(m serviceMocks)
		want    bool
		wantErr error
	}{
		{
			name: "匿名并且没有接收人",
			evt:  domain.Event{App: "files", Type: "file_created"},
			before: func(m serviceMocks) {
				m.session.EXPECT().User(gomock.Any()).Return("", false)
			},
		},
		{
			name: "写入失败",
			evt:  domain.Event{App: "files", Type: "file_created", SubjectParams: []string{"/a.txt"}},
			before: func(m serviceMocks) {
				m.session.EXPECT().User(gomock.Any()).Return("bob", true)
				m.db.ExpectExec("INSERT INTO `activity`").WillReturnError(assert.AnError)
			},
			wantErr: errs.ErrCreateActivityFailed,
		},
		{
			name: "写入成功",
			evt:  domain.Event{App: "files", Type: "file_created", AffectedUser: "alice"},
			before: func(m serviceMocks) {
				m.session.EXPECT().User(gomock.Any()).Return("", false)
				m.db.ExpectExec("INSERT INTO `activity`").WillReturnResult(sqlmock.NewResult(1, 1))
			},
			want: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, m := newMockedService(t, ctrl)
			tc.before(m)

			ok, err := svc.Send(context.Background(), tc.evt)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, ok)
			assert.NoError(t, m.db.ExpectationsWereMet())
		})
	}
}

func TestService_StoreMail(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newMockedService(t, ctrl)
	m.db.ExpectExec("INSERT INTO `activity_mq`").WillReturnResult(sqlmock.NewResult(5, 1))

	err := svc.StoreMail(context.Background(), domain.MailItem{
		App:           "files",
		Subject:       "shared",
		SubjectParams: []string{"/a.txt"},
		AffectedUser:  "bob",
		Type:          "shared",
		LatestSend:    testNow + 3600,
	})
	require.NoError(t, err)
	assert.NoError(t, m.db.ExpectationsWereMet())
}

func TestService_Expire(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		days   int
		before int64
	}{
		{name: "0 天等同于 1 天", days: 0, before: testNow - secondsOfDay},
		{name: "负数等同于 1 天", days: -3, before: testNow - secondsOfDay},
		{name: "1 天", days: 1, before: testNow - secondsOfDay},
		{name: "一周", days: 7, before: testNow - 7*secondsOfDay},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, m := newMockedService(t, ctrl)
			m.db.ExpectExec("DELETE FROM `activity` WHERE `timestamp` < \\?$").
				WithArgs(tc.before).
				WillReturnResult(sqlmock.NewResult(0, 3))

			cnt, err := svc.Expire(context.Background(), tc.days)
			require.NoError(t, err)
			assert.Equal(t, int64(3), cnt)
			assert.NoError(t, m.db.ExpectationsWereMet())
		})
	}
}

func TestService_DeleteActivities(t *testing.T) {
	t.Parallel()

	t.Run("非法条件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newMockedService(t, ctrl)
		_, err := svc.DeleteActivities(context.Background(), domain.Eq{Column: "1=1 OR user", Value: "x"})
		assert.ErrorIs(t, err, errs.ErrInvalidCondition)
		assert.NoError(t, m.db.ExpectationsWereMet())
	})

	t.Run("没有条件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newMockedService(t, ctrl)
		m.db.ExpectExec("^DELETE FROM `activity`$").WillReturnResult(sqlmock.NewResult(0, 10))
		cnt, err := svc.DeleteActivities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(10), cnt)
		assert.NoError(t, m.db.ExpectationsWereMet())
	})

	t.Run("多个条件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newMockedService(t, ctrl)
		m.db.ExpectExec("DELETE FROM `activity` WHERE `affecteduser` = \\? AND `app` = \\?$").
			WithArgs("bob", "files").
			WillReturnResult(sqlmock.NewResult(0, 2))
		cnt, err := svc.DeleteActivities(context.Background(),
			domain.Eq{Column: domain.FieldAffectedUser, Value: "bob"},
			domain.Eq{Column: domain.FieldApp, Value: "files"},
		)
		require.NoError(t, err)
		assert.Equal(t, int64(2), cnt)
		assert.NoError(t, m.db.ExpectationsWereMet())
	})
}

func TestService_NotificationTypes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newMockedService(t, ctrl)

	en := []domain.NotificationType{{ID: "shared", Description: "A file has been shared"}}
	zh := []domain.NotificationType{{ID: "shared", Description: "文件被共享"}}
	m.types.EXPECT().NotificationTypes(gomock.Any(), "en").Return(en, nil).Times(1)
	m.types.EXPECT().NotificationTypes(gomock.Any(), "zh").Return(zh, nil).Times(1)
	m.types.EXPECT().NotificationTypes(gomock.Any(), "fr").Return(nil, assert.AnError).Times(2)

	for i := 0; i < 3; i++ {
		types, err := svc.NotificationTypes(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, en, types)
		types, err = svc.NotificationTypes(context.Background(), "zh")
		require.NoError(t, err)
		assert.Equal(t, zh, types)
	}

	// 失败的结果不缓存
	for i := 0; i < 2; i++ {
		_, err := svc.NotificationTypes(context.Background(), "fr")
		assert.ErrorIs(t, err, errs.ErrNotificationTypes)
	}
}

func TestService_NotificationTypes_CallerCanceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newMockedService(t, ctrl)

	en := []domain.NotificationType{{ID: "shared", Description: "A file has been shared"}}
	m.types.EXPECT().NotificationTypes(gomock.Any(), "en").
		DoAndReturn(func(ctx context.Context, _ string) ([]domain.NotificationType, error) {
			// 合并的请求不受发起者取消的影响
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return en, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	types, err := svc.NotificationTypes(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, en, types)

	types, err = svc.NotificationTypes(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, en, types)
}

func TestNotificationTypeDescriptions(t *testing.T) {
	t.Parallel()
	types := []domain.NotificationType{
		{ID: "shared", Description: "shared"},
		{ID: "file_created", Description: "created", Methods: []string{domain.MethodStream}},
		{ID: "digest", Description: "digest", Methods: []string{domain.MethodEmail}},
	}
	assert.Equal(t, map[string]string{"shared": "shared", "file_created": "created"},
		NotificationTypeDescriptions(types, domain.MethodStream))
	assert.Equal(t, map[string]string{"shared": "shared", "digest": "digest"},
		NotificationTypeDescriptions(types, domain.MethodEmail))
}
