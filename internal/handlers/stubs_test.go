package handlers

import (
	"sort"
	"strings"

	"github.com/Artser/ProStore/internal/models"
	"gorm.io/gorm"
)

type likeKey struct {
	userID uint
	filmID string
}

// stubLikeRepository is an in-memory LikeRepository. When createErr is
// set, CreateLike fails with it; a duplicated-key error also records the
// like, emulating the concurrent insert that won the race.
type stubLikeRepository struct {
	likes       map[likeKey]bool
	createErr   error
	createCalls int
}

func newStubLikeRepository() *stubLikeRepository {
	return &stubLikeRepository{likes: make(map[likeKey]bool)}
}

func (s *stubLikeRepository) CreateLike(like *models.Like) error {
	s.createCalls++
	key := likeKey{like.UserID, like.FilmID}
	if s.createErr != nil {
		if s.createErr == gorm.ErrDuplicatedKey {
			s.likes[key] = true
		}
		return s.createErr
	}
	s.likes[key] = true
	return nil
}

func (s *stubLikeRepository) DeleteLike(userID uint, filmID string) error {
	delete(s.likes, likeKey{userID, filmID})
	return nil
}

func (s *stubLikeRepository) HasUserLikedFilm(userID uint, filmID string) (bool, error) {
	return s.likes[likeKey{userID, filmID}], nil
}

func (s *stubLikeRepository) GetLikesCountByFilmID(filmID string) (int64, error) {
	var count int64
	for key := range s.likes {
		if key.filmID == filmID {
			count++
		}
	}
	return count, nil
}

func (s *stubLikeRepository) GetLikesCountForFilms(filmIDs []string) (map[string]int64, error) {
	result := make(map[string]int64)
	for _, id := range filmIDs {
		count, _ := s.GetLikesCountByFilmID(id)
		if count > 0 {
			result[id] = count
		}
	}
	return result, nil
}

func (s *stubLikeRepository) GetLikedFilmIDs(userID uint, filmIDs []string) (map[string]bool, error) {
	result := make(map[string]bool)
	for _, id := range filmIDs {
		if s.likes[likeKey{userID, id}] {
			result[id] = true
		}
	}
	return result, nil
}

// stubFilmRepository is an in-memory FilmRepository mirroring the
// store's filter and ordering semantics.
type stubFilmRepository struct {
	films []models.Film
}

func (s *stubFilmRepository) CreateFilm(film *models.Film) error {
	s.films = append(s.films, *film)
	return nil
}

func (s *stubFilmRepository) GetFilmByID(id string) (*models.Film, error) {
	for i := range s.films {
		if s.films[i].ID == id {
			film := s.films[i]
			return &film, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubFilmRepository) UpdateFilm(film *models.Film) error {
	for i := range s.films {
		if s.films[i].ID == film.ID {
			s.films[i] = *film
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubFilmRepository) DeleteFilm(id string) error {
	for i := range s.films {
		if s.films[i].ID == id {
			s.films = append(s.films[:i], s.films[i+1:]...)
			return nil
		}
	}
	return nil
}

func matchesQuery(f models.Film, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(f.Title), q) ||
		strings.Contains(strings.ToLower(f.Content), q) ||
		strings.Contains(strings.ToLower(f.Description), q)
}

func (s *stubFilmRepository) publicFiltered(query string) []models.Film {
	var out []models.Film
	for _, f := range s.films {
		if f.IsPublic && matchesQuery(f, query) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *stubFilmRepository) ListByOwner(ownerID uint, query string, offset, limit int) ([]models.Film, int64, error) {
	var out []models.Film
	for _, f := range s.films {
		if f.OwnerID == ownerID && matchesQuery(f, query) {
			out = append(out, f)
		}
	}
	total := int64(len(out))
	return window(out, offset, limit), total, nil
}

func (s *stubFilmRepository) ListPublicRecent(query string, offset, limit int) ([]models.Film, error) {
	return window(s.publicFiltered(query), offset, limit), nil
}

func (s *stubFilmRepository) ListPublicCandidates(query string, limit int) ([]models.Film, error) {
	return window(s.publicFiltered(query), 0, limit), nil
}

func (s *stubFilmRepository) CountPublic(query string) (int64, error) {
	return int64(len(s.publicFiltered(query))), nil
}

func window(films []models.Film, offset, limit int) []models.Film {
	if offset >= len(films) {
		return nil
	}
	end := offset + limit
	if end > len(films) {
		end = len(films)
	}
	return films[offset:end]
}

// stubUserRepository is an in-memory UserRepository enforcing the same
// unique indexes as the store: email always, firebase_uid when set.
type stubUserRepository struct {
	users  []models.User
	nextID uint
}

func (s *stubUserRepository) CreateUser(user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
		if user.FirebaseUID != nil && u.FirebaseUID != nil && *u.FirebaseUID == *user.FirebaseUID {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users = append(s.users, *user)
	return nil
}

func (s *stubUserRepository) GetUserByID(id uint) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) GetUserByEmail(email string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].FirebaseUID != nil && *s.users[i].FirebaseUID == firebaseUID {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) UpdateUser(user *models.User) error {
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubUserRepository) DeleteUser(id uint) error {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// stubCategoryRepository hands out a fixed default category
type stubCategoryRepository struct{}

func (stubCategoryRepository) GetOrCreateDefault() (*models.Category, error) {
	return &models.Category{ID: 1, Category: models.DefaultCategoryName}, nil
}

func (stubCategoryRepository) GetCategoryByID(id uint) (*models.Category, error) {
	return &models.Category{ID: id, Category: models.DefaultCategoryName}, nil
}
