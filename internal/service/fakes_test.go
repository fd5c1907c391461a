package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"pixelwall/internal/auth"
	"pixelwall/internal/entity"
	"pixelwall/internal/storage"
)

// memRepo is an in-memory Repository used by the service tests. It mirrors
// the observable behaviour of the SQL implementation: record-not-found and
// duplicate-key conditions surface as the gorm sentinel errors.
type memRepo struct {
	mu         sync.Mutex
	users      map[uint]*entity.DbUser
	artworks   map[uint]*entity.DbArtwork
	votes      []entity.DbVote
	resets     []entity.DbVoteResetLog
	events     []entity.DbTransactionLog
	nextUserID uint
	nextArtID  uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:    make(map[uint]*entity.DbUser),
		artworks: make(map[uint]*entity.DbArtwork),
	}
}

func (m *memRepo) CreateUser(_ context.Context, user *entity.DbUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextUserID++
	user.ID = m.nextUserID
	user.CreatedAt = time.Now()
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memRepo) UpdateUser(_ context.Context, id uint, updates entity.UserUpdates) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if updates.PasswordHash != nil {
		user.PasswordHash = *updates.PasswordHash
	}
	if updates.EmailVerified != nil {
		user.EmailVerified = *updates.EmailVerified
	}
	if updates.FirstName != nil {
		user.FirstName = *updates.FirstName
	}
	if updates.LastName != nil {
		user.LastName = *updates.LastName
	}
	if updates.Phone != nil {
		user.Phone = *updates.Phone
	}
	if updates.Age != nil {
		age := *updates.Age
		user.Age = &age
	} else if updates.ClearAge {
		user.Age = nil
	}
	if updates.About != nil {
		user.About = *updates.About
	}
	if updates.ProfilePhoto != nil {
		user.ProfilePhoto = *updates.ProfilePhoto
	}
	return nil
}

func (m *memRepo) GetUserByID(_ context.Context, id uint) (*entity.DbUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *memRepo) GetUserByEmail(_ context.Context, email string) (*entity.DbUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) GetUserByLogin(_ context.Context, identifier string) (*entity.DbUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == identifier || strings.EqualFold(user.Email, identifier) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) IdentityExists(_ context.Context, username, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username || strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) CountSuperusers(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, user := range m.users {
		if user.IsSuperuser {
			count++
		}
	}
	return count, nil
}

func (m *memRepo) CreateArtwork(_ context.Context, artwork *entity.DbArtwork) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextArtID++
	artwork.ID = m.nextArtID
	artwork.CreatedAt = time.Now()
	clone := *artwork
	m.artworks[artwork.ID] = &clone
	return nil
}

func (m *memRepo) UpdateArtwork(_ context.Context, id uint, updates entity.ArtworkUpdates) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	artwork, ok := m.artworks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if updates.ModerationStatus != nil {
		artwork.ModerationStatus = *updates.ModerationStatus
	}
	if updates.Location != nil {
		artwork.Location = *updates.Location
	}
	if updates.Identifier != nil {
		artwork.Identifier = *updates.Identifier
	}
	if updates.QRCode != nil {
		artwork.QRCode = *updates.QRCode
	}
	if updates.Archived != nil {
		artwork.Archived = *updates.Archived
	}
	if updates.ArchivedBy != nil {
		artwork.ArchivedBy = *updates.ArchivedBy
	}
	if updates.ArchivedDate != nil {
		stamp := *updates.ArchivedDate
		artwork.ArchivedDate = &stamp
	}
	if updates.ClearArchival {
		artwork.Archived = false
		artwork.ArchivedBy = ""
		artwork.ArchivedDate = nil
	}
	return nil
}

func (m *memRepo) GetArtwork(_ context.Context, id uint) (*entity.DbArtwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	artwork, ok := m.artworks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *artwork
	return &clone, nil
}

func (m *memRepo) ListArtworksByOwner(_ context.Context, userID uint) ([]entity.DbArtwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.DbArtwork
	for id := uint(1); id <= m.nextArtID; id++ {
		if artwork, ok := m.artworks[id]; ok && artwork.UserID == userID {
			out = append(out, *artwork)
		}
	}
	return out, nil
}

func (m *memRepo) ListArtworks(_ context.Context) ([]entity.DbArtwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.DbArtwork
	for id := uint(1); id <= m.nextArtID; id++ {
		if artwork, ok := m.artworks[id]; ok {
			out = append(out, *artwork)
		}
	}
	return out, nil
}

func (m *memRepo) ListGallery(_ context.Context, query entity.GalleryQuery) ([]entity.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.GalleryItem
	for id := uint(1); id <= m.nextArtID; id++ {
		artwork, ok := m.artworks[id]
		if !ok {
			continue
		}
		if artwork.ModerationStatus != entity.StatusModerated || artwork.Archived {
			continue
		}
		if !query.Authenticated && artwork.Location == entity.LocationNone {
			continue
		}
		if query.Location != "" && artwork.Location != query.Location {
			continue
		}
		var total int64
		for _, vote := range m.votes {
			if vote.ArtworkID == artwork.ID {
				total += int64(vote.Value)
			}
		}
		out = append(out, entity.GalleryItem{
			ID:         artwork.ID,
			Name:       artwork.Name,
			ImageFile:  artwork.ImageFile,
			Location:   artwork.Location,
			UserID:     artwork.UserID,
			Identifier: artwork.Identifier,
			QRCode:     artwork.QRCode,
			VoteTotal:  total,
		})
	}
	return out, nil
}

func (m *memRepo) CreateVote(_ context.Context, vote *entity.DbVote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.votes {
		if existing.UserID == vote.UserID && existing.ArtworkID == vote.ArtworkID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.votes = append(m.votes, *vote)
	return nil
}

func (m *memRepo) HasVote(_ context.Context, userID, artworkID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, vote := range m.votes {
		if vote.UserID == userID && vote.ArtworkID == artworkID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) VoteTotal(_ context.Context, artworkID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, vote := range m.votes {
		if vote.ArtworkID == artworkID {
			total += int64(vote.Value)
		}
	}
	return total, nil
}

func (m *memRepo) ResetVotes(_ context.Context, artworkID uint, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.votes[:0]
	for _, vote := range m.votes {
		if vote.ArtworkID != artworkID {
			kept = append(kept, vote)
		}
	}
	m.votes = kept
	m.resets = append(m.resets, entity.DbVoteResetLog{
		CreatedAt: time.Now(),
		ArtworkID: artworkID,
		Reason:    reason,
	})
	return nil
}

func (m *memRepo) ListVoteResetLogs(_ context.Context, artworkID uint) ([]entity.DbVoteResetLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.DbVoteResetLog
	for i := len(m.resets) - 1; i >= 0; i-- {
		if m.resets[i].ArtworkID == artworkID {
			out = append(out, m.resets[i])
		}
	}
	return out, nil
}

func (m *memRepo) AppendTransactionLog(_ context.Context, eventType, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, entity.DbTransactionLog{
		CreatedAt:   time.Now(),
		EventType:   eventType,
		Description: description,
	})
	return nil
}

func (m *memRepo) ListTransactionLogs(_ context.Context) ([]entity.DbTransactionLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.DbTransactionLog, 0, len(m.events))
	for i := len(m.events) - 1; i >= 0; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

func (m *memRepo) eventCount(eventType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int
	for _, event := range m.events {
		if event.EventType == eventType {
			count++
		}
	}
	return count
}

// memStore records object writes keyed the way the real backends do.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	saves   int
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) Save(_ context.Context, data []byte, opts storage.SaveOptions) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fmt.Sprintf("%s/%s.%s", opts.Category, opts.BaseName, opts.Extension)
	if opts.SkipIfExists {
		if _, ok := s.objects[key]; ok {
			return key, nil
		}
	}
	s.saves++
	s.objects[key] = append([]byte(nil), data...)
	return key, nil
}

func (s *memStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return append([]byte(nil), data...), nil
}

// memNotifier records outbound mail instead of sending it.
type memNotifier struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (n *memNotifier) Send(_ context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (n *memNotifier) last() (sentMail, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return sentMail{}, false
	}
	return n.sent[len(n.sent)-1], true
}

func seedUser(t *testing.T, repo *memRepo, username string, superuser bool) *entity.DbUser {
	t.Helper()
	hash, err := auth.HashPassword("password-123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &entity.DbUser{
		Username:      username,
		Email:         username + "@example.com",
		PasswordHash:  hash,
		IsSuperuser:   superuser,
		EmailVerified: true,
	}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func seedArtwork(t *testing.T, repo *memRepo, ownerID uint, status, location string) *entity.DbArtwork {
	t.Helper()
	artwork := &entity.DbArtwork{
		Name:             "test artwork",
		ImageFile:        "test.png",
		PixelData:        []byte{0x89, 0x50, 0x4e, 0x47},
		ModerationStatus: status,
		Location:         location,
		UserID:           ownerID,
	}
	if err := repo.CreateArtwork(context.Background(), artwork); err != nil {
		t.Fatalf("create artwork: %v", err)
	}
	return artwork
}
