package handler

import (
	"github.com/bagdasarian/tuesday/internal/domain"
)

func teamSummaryToHTTP(team *domain.TeamSummary) *TeamSummaryResponse {
	if team == nil {
		return nil
	}
	return &TeamSummaryResponse{ID: team.ID, Name: team.Name}
}

func userSummaryToHTTP(user *domain.UserSummary) *UserSummaryResponse {
	if user == nil {
		return nil
	}
	return &UserSummaryResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

func domainMembershipToHTTP(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		TeamID:    m.TeamID,
		Role:      string(m.Role),
		Team:      teamSummaryToHTTP(m.Team),
		User:      userSummaryToHTTP(m.User),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func domainMembershipsToHTTP(memberships []domain.Membership) []MembershipResponse {
	result := make([]MembershipResponse, 0, len(memberships))
	for i := range memberships {
		result = append(result, domainMembershipToHTTP(&memberships[i]))
	}
	return result
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Memberships: domainMembershipsToHTTP(user.Memberships),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func domainUsersToHTTP(users []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domainUserToHTTP(user))
	}
	return result
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Memberships: domainMembershipsToHTTP(team.Memberships),
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

func domainBoardToHTTP(board *domain.Board) BoardResponse {
	return BoardResponse{
		ID:        board.ID,
		Title:     board.Title,
		TeamID:    board.TeamID,
		Team:      teamSummaryToHTTP(board.Team),
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
}

func domainBoardsToHTTP(boards []*domain.Board) []BoardResponse {
	result := make([]BoardResponse, 0, len(boards))
	for _, board := range boards {
		result = append(result, domainBoardToHTTP(board))
	}
	return result
}

func domainBoardDetailToHTTP(board *domain.Board) BoardDetailResponse {
	columns := make([]ColumnResponse, 0, len(board.Columns))
	for i := range board.Columns {
		columns = append(columns, domainColumnToHTTP(&board.Columns[i]))
	}

	return BoardDetailResponse{
		BoardResponse: domainBoardToHTTP(board),
		Columns:       columns,
	}
}

func domainColumnToHTTP(column *domain.Column) ColumnResponse {
	tasks := make([]TaskResponse, 0, len(column.Tasks))
	for i := range column.Tasks {
		tasks = append(tasks, domainTaskToHTTP(&column.Tasks[i]))
	}

	return ColumnResponse{
		ID:        column.ID,
		Title:     column.Title,
		Color:     column.Color,
		BoardID:   column.BoardID,
		Order:     column.Order,
		Tasks:     tasks,
		CreatedAt: column.CreatedAt,
	}
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:         task.ID,
		Title:      task.Title,
		Owner:      task.Owner,
		AssigneeID: task.AssigneeID,
		Status:     string(task.Status),
		Deadline:   task.Deadline,
		ColumnID:   task.ColumnID,
		Order:      task.Order,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}
}

func domainWeeklyOverviewToHTTP(overview *domain.WeeklyOverview) WeeklyOverviewResponse {
	days := make([]WeekDayResponse, 0, len(overview.Days))
	for _, day := range overview.Days {
		tasks := make([]OverviewTaskResponse, 0, len(day.Tasks))
		for _, task := range day.Tasks {
			tasks = append(tasks, OverviewTaskResponse{
				ID:          task.ID,
				Title:       task.Title,
				Status:      string(task.Status),
				Deadline:    task.Deadline,
				BoardID:     task.BoardID,
				BoardTitle:  task.BoardTitle,
				ColumnID:    task.ColumnID,
				ColumnTitle: task.ColumnTitle,
			})
		}
		days = append(days, WeekDayResponse{
			Weekday: day.Weekday,
			Date:    day.Date,
			Tasks:   tasks,
		})
	}

	return WeeklyOverviewResponse{
		User: OverviewUserResponse{
			ID:   overview.User.ID,
			Name: overview.User.Name,
		},
		WeekStart: overview.WeekStart,
		WeekEnd:   overview.WeekEnd,
		Days:      days,
	}
}

func domainAdminOverviewToHTTP(overview *domain.AdminOverview) AdminOverviewResponse {
	teams := make([]TeamResponse, 0, len(overview.Teams))
	for _, team := range overview.Teams {
		teams = append(teams, domainTeamToHTTP(team))
	}

	return AdminOverviewResponse{
		Users:  domainUsersToHTTP(overview.Users),
		Teams:  teams,
		Boards: domainBoardsToHTTP(overview.Boards),
	}
}

func httpTaskDraftToDomain(req CreateTaskRequest) domain.TaskDraft {
	return domain.TaskDraft{
		Title:      req.Title,
		Owner:      req.Owner,
		AssigneeID: req.AssigneeID,
		Status:     req.Status,
		Deadline:   req.Deadline,
	}
}

func nullableToOptional(n NullableString) domain.Optional[string] {
	return domain.Optional[string]{Set: n.Set, Value: n.Value}
}

func httpTaskPatchToDomain(req UpdateTaskRequest) domain.TaskPatch {
	return domain.TaskPatch{
		Title:      nullableToOptional(req.Title),
		Status:     nullableToOptional(req.Status),
		Deadline:   nullableToOptional(req.Deadline),
		AssigneeID: nullableToOptional(req.AssigneeID),
		Owner:      nullableToOptional(req.Owner),
	}
}
