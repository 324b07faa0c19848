package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	ginrouter "graphql-user-service/internal/adapter/gin/router"
	graphqladapter "graphql-user-service/internal/adapter/graphql"
	domain "graphql-user-service/internal/domain/user"
	"graphql-user-service/internal/usecase/user"
)

// memoryRepository is an in-memory implementation of the user Repository
// interface. It mirrors the persistence adapter contract: identifiers are
// store-minted ObjectIDs and malformed identifiers behave as not-found.
type memoryRepository struct {
	mu    sync.Mutex
	order []string
	users map[string]domain.User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[string]domain.User)}
}

func (r *memoryRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryRepository) Create(_ context.Context, name, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := domain.User{ID: primitive.NewObjectID().Hex(), Name: name, Email: email}
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)
	return &u, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// graphqlResponse is the wire shape of a GraphQL response.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GraphQLAPITestSuite drives the service over HTTP end to end:
// transport -> resolver -> usecase -> repository.
type GraphQLAPITestSuite struct {
	suite.Suite
	server *httptest.Server
	repo   *memoryRepository
}

// SetupTest builds a fresh service over an empty store for every test.
func (s *GraphQLAPITestSuite) SetupTest() {
	logger := zaptest.NewLogger(s.T())

	s.repo = newMemoryRepository()
	uc := user.New(s.repo, logger)

	schema, err := graphqladapter.NewSchema(uc, logger)
	s.Require().NoError(err)

	s.server = httptest.NewServer(ginrouter.SetupRouter(schema, logger))
}

func (s *GraphQLAPITestSuite) TearDownTest() {
	s.server.Close()
}

// exec posts a GraphQL query with variables and decodes the response.
func (s *GraphQLAPITestSuite) exec(query string, variables map[string]interface{}) graphqlResponse {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	s.Require().NoError(err)

	resp, err := http.Post(s.server.URL+"/graphql", "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var out graphqlResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *GraphQLAPITestSuite) TestLiveness() {
	resp, err := http.Get(s.server.URL + "/")
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "running")
}

func (s *GraphQLAPITestSuite) TestHealth() {
	resp, err := http.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *GraphQLAPITestSuite) TestGraphiQLExplorer() {
	resp, err := http.Get(s.server.URL + "/graphql")
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/html")
	s.Contains(string(body), "GraphiQL")
}

func (s *GraphQLAPITestSuite) TestUsers_EmptyStore() {
	out := s.exec(`{ users { id name email } }`, nil)

	s.Empty(out.Errors)
	s.JSONEq(`{"users": []}`, string(out.Data))
}

func (s *GraphQLAPITestSuite) TestUserLifecycle() {
	// addUser mints a non-null identifier
	out := s.exec(`mutation($name: String!, $email: String!) {
		addUser(name: $name, email: $email) { id name email }
	}`, map[string]interface{}{"name": "Alice", "email": "alice@example.com"})
	s.Require().Empty(out.Errors)

	var added struct {
		AddUser struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"addUser"`
	}
	s.Require().NoError(json.Unmarshal(out.Data, &added))
	s.NotEmpty(added.AddUser.ID)
	s.Equal("Alice", added.AddUser.Name)
	s.Equal("alice@example.com", added.AddUser.Email)

	// userById on the returned id yields the same record
	out = s.exec(`query($id: ID!) { userById(id: $id) { id name email } }`,
		map[string]interface{}{"id": added.AddUser.ID})
	s.Require().Empty(out.Errors)

	var fetched struct {
		UserByID *struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"userById"`
	}
	s.Require().NoError(json.Unmarshal(out.Data, &fetched))
	s.Require().NotNil(fetched.UserByID)
	s.Equal(added.AddUser.ID, fetched.UserByID.ID)
	s.Equal("Alice", fetched.UserByID.Name)

	// deleteUser returns true exactly once
	out = s.exec(`mutation($id: ID!) { deleteUser(id: $id) }`,
		map[string]interface{}{"id": added.AddUser.ID})
	s.Require().Empty(out.Errors)
	s.JSONEq(`{"deleteUser": true}`, string(out.Data))

	// the record is gone
	out = s.exec(`query($id: ID!) { userById(id: $id) { id } }`,
		map[string]interface{}{"id": added.AddUser.ID})
	s.Require().Empty(out.Errors)
	s.JSONEq(`{"userById": null}`, string(out.Data))

	// a second delete with the same id returns false
	out = s.exec(`mutation($id: ID!) { deleteUser(id: $id) }`,
		map[string]interface{}{"id": added.AddUser.ID})
	s.Require().Empty(out.Errors)
	s.JSONEq(`{"deleteUser": false}`, string(out.Data))
}

func (s *GraphQLAPITestSuite) TestDeleteUser_MalformedID() {
	out := s.exec(`mutation($id: ID!) { deleteUser(id: $id) }`,
		map[string]interface{}{"id": "not-a-valid-id"})

	s.Empty(out.Errors)
	s.JSONEq(`{"deleteUser": false}`, string(out.Data))
}

func (s *GraphQLAPITestSuite) TestUserByID_MalformedID() {
	out := s.exec(`query($id: ID!) { userById(id: $id) { id } }`,
		map[string]interface{}{"id": "not-a-valid-id"})

	s.Empty(out.Errors)
	s.JSONEq(`{"userById": null}`, string(out.Data))
}

func (s *GraphQLAPITestSuite) TestAddUser_MissingArgument() {
	out := s.exec(`mutation { addUser(name: "Alice") { id } }`, nil)

	s.NotEmpty(out.Errors)
}

func TestGraphQLAPITestSuite(t *testing.T) {
	suite.Run(t, new(GraphQLAPITestSuite))
}
