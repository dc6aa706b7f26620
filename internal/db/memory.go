package db

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/symposiahq/symposia/internal/models"
	"github.com/symposiahq/symposia/internal/security"
)

// memoryStore is the fallback implementation used when no database is
// configured. It is process-local and seeded with a bootstrap admin so a
// fresh deployment without DATABASE_URL is still administrable.
type memoryStore struct {
	mu sync.Mutex

	users         map[uint]models.User
	profiles      map[uint]models.Profile
	abstracts     map[uint]models.Abstract
	invitations   map[uint]models.Invitation
	notifications map[uint]models.Notification
	committee     map[uint]models.CommitteeMember
	awards        map[uint]models.ResearchAward
	sessions      map[string]models.Session

	nextID uint
}

const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@symposia.local"
	seedAdminPassword = "admin123"
)

func NewMemoryStore() (*Store, error) {
	mem := &memoryStore{
		users:         make(map[uint]models.User),
		profiles:      make(map[uint]models.Profile),
		abstracts:     make(map[uint]models.Abstract),
		invitations:   make(map[uint]models.Invitation),
		notifications: make(map[uint]models.Notification),
		committee:     make(map[uint]models.CommitteeMember),
		awards:        make(map[uint]models.ResearchAward),
		sessions:      make(map[string]models.Session),
		nextID:        1,
	}

	passwordHash, err := security.HashPassword(seedAdminPassword)
	if err != nil {
		return nil, err
	}
	admin := models.User{
		Username:     seedAdminUsername,
		Email:        seedAdminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := mem.CreateUser(&admin); err != nil {
		return nil, err
	}
	if err := mem.CreateProfile(&models.Profile{UserID: admin.ID}); err != nil {
		return nil, err
	}

	return &Store{
		Users:         mem,
		Profiles:      mem,
		Abstracts:     mem,
		Invitations:   mem,
		Notifications: mem,
		Committee:     mem,
		Awards:        mem,
		Sessions:      mem,
	}, nil
}

func (mem *memoryStore) allocateID() uint {
	id := mem.nextID
	mem.nextID++
	return id
}

func (mem *memoryStore) CreateUser(user *models.User) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	user.ID = mem.allocateID()
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	mem.users[user.ID] = *user
	return nil
}

func (mem *memoryStore) FindUserByID(userID uint) (models.User, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	user, ok := mem.users[userID]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (mem *memoryStore) FindUserByUsername(username string) (models.User, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	for _, user := range mem.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (mem *memoryStore) FindUserByEmail(email string) (models.User, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	for _, user := range mem.users {
		if strings.EqualFold(strings.TrimSpace(user.Email), email) {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (mem *memoryStore) IdentityTaken(username string, email string) (bool, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	for _, user := range mem.users {
		if user.Username == username || strings.EqualFold(strings.TrimSpace(user.Email), email) {
			return true, nil
		}
	}
	return false, nil
}

func (mem *memoryStore) ListUsers() ([]models.User, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	users := make([]models.User, 0, len(mem.users))
	for _, user := range mem.users {
		users = append(users, user)
	}
	sort.Slice(users, func(left, right int) bool {
		return users[left].CreatedAt.Before(users[right].CreatedAt)
	})
	return users, nil
}

func (mem *memoryStore) UpdateUserRole(userID uint, role string) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	user, ok := mem.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Role = role
	mem.users[userID] = user
	return nil
}

func (mem *memoryStore) CreateProfile(profile *models.Profile) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	profile.ID = mem.allocateID()
	mem.profiles[profile.ID] = *profile
	return nil
}

func (mem *memoryStore) FindProfileByUserID(userID uint) (models.Profile, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	for _, profile := range mem.profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return models.Profile{}, ErrNotFound
}

func (mem *memoryStore) SaveProfile(profile *models.Profile) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.profiles[profile.ID]; !ok {
		return ErrNotFound
	}
	mem.profiles[profile.ID] = *profile
	return nil
}

func (mem *memoryStore) CreateAbstract(abstract *models.Abstract) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	abstract.ID = mem.allocateID()
	mem.abstracts[abstract.ID] = *abstract
	return nil
}

func (mem *memoryStore) FindAbstractByID(abstractID uint) (models.Abstract, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	abstract, ok := mem.abstracts[abstractID]
	if !ok {
		return models.Abstract{}, ErrNotFound
	}
	return abstract, nil
}

func (mem *memoryStore) ListAbstractsByUser(userID uint) ([]models.Abstract, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	abstracts := make([]models.Abstract, 0)
	for _, abstract := range mem.abstracts {
		if abstract.UserID == userID {
			abstracts = append(abstracts, abstract)
		}
	}
	sort.Slice(abstracts, func(left, right int) bool {
		return abstracts[left].CreatedAt.Before(abstracts[right].CreatedAt)
	})
	return abstracts, nil
}

func (mem *memoryStore) ListAbstracts() ([]models.Abstract, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	abstracts := make([]models.Abstract, 0, len(mem.abstracts))
	for _, abstract := range mem.abstracts {
		abstracts = append(abstracts, abstract)
	}
	sort.Slice(abstracts, func(left, right int) bool {
		return abstracts[left].UpdatedAt.After(abstracts[right].UpdatedAt)
	})
	return abstracts, nil
}

func (mem *memoryStore) SaveAbstract(abstract *models.Abstract) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.abstracts[abstract.ID]; !ok {
		return ErrNotFound
	}
	mem.abstracts[abstract.ID] = *abstract
	return nil
}

func (mem *memoryStore) DeleteAbstract(abstractID uint) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.abstracts[abstractID]; !ok {
		return ErrNotFound
	}
	delete(mem.abstracts, abstractID)
	return nil
}

func (mem *memoryStore) CreateInvitation(invitation *models.Invitation) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	for _, existing := range mem.invitations {
		if existing.Token == invitation.Token {
			return ErrDuplicateToken
		}
	}
	invitation.ID = mem.allocateID()
	mem.invitations[invitation.ID] = *invitation
	return nil
}

func (mem *memoryStore) FindInvitationByToken(token string) (models.Invitation, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	for _, invitation := range mem.invitations {
		if invitation.Token == token {
			return invitation, nil
		}
	}
	return models.Invitation{}, ErrNotFound
}

func (mem *memoryStore) ListInvitations() ([]models.Invitation, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	invitations := make([]models.Invitation, 0, len(mem.invitations))
	for _, invitation := range mem.invitations {
		invitations = append(invitations, invitation)
	}
	sort.Slice(invitations, func(left, right int) bool {
		return invitations[left].CreatedAt.After(invitations[right].CreatedAt)
	})
	return invitations, nil
}

func (mem *memoryStore) ResolveInvitation(token string, status string, institution string, position string) (bool, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	for id, invitation := range mem.invitations {
		if invitation.Token != token {
			continue
		}
		if invitation.Status != models.StatusPending {
			return false, nil
		}
		invitation.Status = status
		if institution != "" {
			invitation.Institution = institution
		}
		if position != "" {
			invitation.Position = position
		}
		mem.invitations[id] = invitation
		return true, nil
	}
	return false, nil
}

func (mem *memoryStore) CreateNotification(notification *models.Notification) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	notification.ID = mem.allocateID()
	mem.notifications[notification.ID] = *notification
	return nil
}

func (mem *memoryStore) FindNotificationByID(notificationID uint) (models.Notification, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	notification, ok := mem.notifications[notificationID]
	if !ok {
		return models.Notification{}, ErrNotFound
	}
	return notification, nil
}

func (mem *memoryStore) ListNotifications() ([]models.Notification, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	notifications := make([]models.Notification, 0, len(mem.notifications))
	for _, notification := range mem.notifications {
		notifications = append(notifications, notification)
	}
	sortNotificationsNewestFirst(notifications)
	return notifications, nil
}

func (mem *memoryStore) ListVisibleNotifications(now time.Time) ([]models.Notification, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	notifications := make([]models.Notification, 0)
	for _, notification := range mem.notifications {
		if notification.Visible(now) {
			notifications = append(notifications, notification)
		}
	}
	sortNotificationsNewestFirst(notifications)
	return notifications, nil
}

func sortNotificationsNewestFirst(notifications []models.Notification) {
	sort.Slice(notifications, func(left, right int) bool {
		return notifications[left].CreatedAt.After(notifications[right].CreatedAt)
	})
}

func (mem *memoryStore) SaveNotification(notification *models.Notification) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.notifications[notification.ID]; !ok {
		return ErrNotFound
	}
	mem.notifications[notification.ID] = *notification
	return nil
}

func (mem *memoryStore) DeleteNotification(notificationID uint) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.notifications[notificationID]; !ok {
		return ErrNotFound
	}
	delete(mem.notifications, notificationID)
	return nil
}

func (mem *memoryStore) CreateCommitteeMember(member *models.CommitteeMember) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	member.ID = mem.allocateID()
	mem.committee[member.ID] = *member
	return nil
}

func (mem *memoryStore) FindCommitteeMemberByID(memberID uint) (models.CommitteeMember, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	member, ok := mem.committee[memberID]
	if !ok {
		return models.CommitteeMember{}, ErrNotFound
	}
	return member, nil
}

func (mem *memoryStore) ListCommitteeMembers(category string) ([]models.CommitteeMember, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	members := make([]models.CommitteeMember, 0)
	for _, member := range mem.committee {
		if category == "" || member.Category == category {
			members = append(members, member)
		}
	}
	sort.Slice(members, func(left, right int) bool {
		if members[left].DisplayOrder != members[right].DisplayOrder {
			return members[left].DisplayOrder < members[right].DisplayOrder
		}
		return members[left].Name < members[right].Name
	})
	return members, nil
}

func (mem *memoryStore) SaveCommitteeMember(member *models.CommitteeMember) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.committee[member.ID]; !ok {
		return ErrNotFound
	}
	mem.committee[member.ID] = *member
	return nil
}

func (mem *memoryStore) DeleteCommitteeMember(memberID uint) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.committee[memberID]; !ok {
		return ErrNotFound
	}
	delete(mem.committee, memberID)
	return nil
}

func (mem *memoryStore) CreateAward(award *models.ResearchAward) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	award.ID = mem.allocateID()
	mem.awards[award.ID] = *award
	return nil
}

func (mem *memoryStore) FindAwardByID(awardID uint) (models.ResearchAward, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	award, ok := mem.awards[awardID]
	if !ok {
		return models.ResearchAward{}, ErrNotFound
	}
	return award, nil
}

func (mem *memoryStore) ListAwards(activeOnly bool) ([]models.ResearchAward, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	awards := make([]models.ResearchAward, 0)
	for _, award := range mem.awards {
		if !activeOnly || award.IsActive {
			awards = append(awards, award)
		}
	}
	sort.Slice(awards, func(left, right int) bool {
		return awards[left].CreatedAt.Before(awards[right].CreatedAt)
	})
	return awards, nil
}

func (mem *memoryStore) SaveAward(award *models.ResearchAward) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.awards[award.ID]; !ok {
		return ErrNotFound
	}
	mem.awards[award.ID] = *award
	return nil
}

func (mem *memoryStore) DeleteAward(awardID uint) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.awards[awardID]; !ok {
		return ErrNotFound
	}
	delete(mem.awards, awardID)
	return nil
}

func (mem *memoryStore) CreateSession(session *models.Session) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	mem.sessions[session.ID] = *session
	return nil
}

func (mem *memoryStore) FindSessionByID(sessionID string) (models.Session, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	session, ok := mem.sessions[sessionID]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

func (mem *memoryStore) RenewSession(sessionID string, renewedAt time.Time, expiresAt time.Time) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	session, ok := mem.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.RenewedAt = renewedAt
	session.ExpiresAt = expiresAt
	mem.sessions[sessionID] = session
	return nil
}

func (mem *memoryStore) DeleteSession(sessionID string) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	delete(mem.sessions, sessionID)
	return nil
}

func (mem *memoryStore) PurgeExpiredSessions(now time.Time) (int64, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	var purged int64
	for id, session := range mem.sessions {
		if session.Expired(now) {
			delete(mem.sessions, id)
			purged++
		}
	}
	return purged, nil
}
