package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealmarket-be/internal/cart"
	"mealmarket-be/internal/message"
	"mealmarket-be/internal/middleware"
	"mealmarket-be/internal/order"
	"mealmarket-be/internal/recipe"
	"mealmarket-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserService is a mock implementation of the user service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params user.RegisterParams) (*user.Account, string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*user.Account), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, phone, password string) (*user.Account, string, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*user.Account), args.String(1), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*user.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Account), args.Error(1)
}

func (m *MockUserService) ListCaterers(ctx context.Context) ([]*user.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Account), args.Error(1)
}

func (m *MockUserService) GetCatererByID(ctx context.Context, id string) (*user.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Account), args.Error(1)
}

// MockOrderService is a mock implementation of the order service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, params order.PlaceOrderParams) (*order.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListForUser(ctx context.Context, userID string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) ListForCaterer(ctx context.Context, catererID string) ([]*order.Order, error) {
	args := m.Called(ctx, catererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) SetItemsStatus(ctx context.Context, catererID, orderID string, recipeIDs []string, status order.ItemStatus) (int, error) {
	args := m.Called(ctx, catererID, orderID, recipeIDs, status)
	return args.Int(0), args.Error(1)
}

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, params recipe.CreateParams) (*recipe.Recipe, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, params recipe.UpdateParams) (*recipe.Recipe, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockRecipeService) GetByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListAll(ctx context.Context) ([]*recipe.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListByOwner(ctx context.Context, ownerID string) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListByCategory(ctx context.Context, category string) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

// MockMessageService is a mock implementation of the message service
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Send(ctx context.Context, params message.SendParams) (*message.Message, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*message.Message), args.Error(1)
}

func (m *MockMessageService) Reply(ctx context.Context, replierID, messageID, content string) (*message.Message, error) {
	args := m.Called(ctx, replierID, messageID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*message.Message), args.Error(1)
}

func (m *MockMessageService) ListForRecipient(ctx context.Context, recipientID string) ([]*message.Message, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*message.Message), args.Error(1)
}

func (m *MockMessageService) MarkRead(ctx context.Context, messageID, readerID string) error {
	args := m.Called(ctx, messageID, readerID)
	return args.Error(0)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// asIdentity fakes the auth middleware for handler tests.
func asIdentity(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.RoleKey, role)
		c.Next()
	}
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAuthHandler(mockUsers)

		acct := &user.Account{ID: "user-1", Username: "amina", Role: user.RoleUser}
		mockUsers.On("Register", mock.Anything, mock.MatchedBy(func(p user.RegisterParams) bool {
			return p.Phone == "0811" && p.Role == user.RoleUser
		})).Return(acct, "token-123", nil).Once()

		r := gin.New()
		r.POST("/api/auth/register", h.Register)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/register", jsonBody(t, gin.H{
			"username": "amina", "phone": "0811", "password": "secret", "role": "user",
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "token-123")
		mockUsers.AssertExpectations(t)
	})

	t.Run("Duplicate Phone Maps To 409", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAuthHandler(mockUsers)

		mockUsers.On("Register", mock.Anything, mock.Anything).
			Return(nil, "", user.ErrPhoneExists).Once()

		r := gin.New()
		r.POST("/api/auth/register", h.Register)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/register", jsonBody(t, gin.H{
			"username": "amina", "phone": "0811", "password": "secret", "role": "user",
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		h := NewAuthHandler(new(MockUserService))

		r := gin.New()
		r.POST("/api/auth/register", h.Register)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte("{not json")))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Bad Credentials Map To 401", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAuthHandler(mockUsers)

		mockUsers.On("Login", mock.Anything, "0811", "wrong").
			Return(nil, "", user.ErrInvalidCredentials).Once()

		r := gin.New()
		r.POST("/api/auth/login", h.Login)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/login", jsonBody(t, gin.H{
			"phone": "0811", "password": "wrong",
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCartHandler_AnonymousFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	carts := cart.NewService(cart.NewMemoryStore(), cart.NewMemoryStore())
	h := NewCartHandler(carts)

	r := gin.New()
	r.POST("/api/cart/get", h.Get)
	r.POST("/api/cart/add", h.Add)
	r.POST("/api/cart/update", h.Update)

	do := func(path string, body any) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", path, jsonBody(t, body))
		req.Header.Set("X-Session-ID", "sess-1")
		r.ServeHTTP(w, req)
		return w
	}

	w := do("/api/cart/add", gin.H{"itemId": "r1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do("/api/cart/add", gin.H{"itemId": "r1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"r1":2`)

	w = do("/api/cart/update", gin.H{"itemId": "r1", "quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	w = do("/api/cart/get", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "r1")
}

func TestOrderHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Passes Accepted Status Through", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders)

		mockOrders.On("SetItemsStatus", mock.Anything, "cat-1", "order-1",
			[]string{"r1", "r2"}, order.ItemAccepted).Return(2, nil).Once()

		r := gin.New()
		r.POST("/api/orders/accept", asIdentity("cat-1", "caterer"), h.Accept)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/orders/accept", jsonBody(t, gin.H{
			"orderId": "order-1", "itemIds": []string{"r1", "r2"},
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":2`)
		mockOrders.AssertExpectations(t)
	})

	t.Run("Foreign Items Map To 403", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders)

		mockOrders.On("SetItemsStatus", mock.Anything, "cat-2", "order-1",
			[]string{"r1"}, order.ItemAccepted).Return(0, order.ErrItemsNotOwned).Once()

		r := gin.New()
		r.POST("/api/orders/accept", asIdentity("cat-2", "caterer"), h.Accept)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/orders/accept", jsonBody(t, gin.H{
			"orderId": "order-1", "itemIds": []string{"r1"},
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No Rows Map To 409", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		h := NewOrderHandler(mockOrders)

		mockOrders.On("SetItemsStatus", mock.Anything, "cat-1", "order-1",
			[]string{"r9"}, order.ItemAccepted).Return(0, order.ErrNoItemsUpdated).Once()

		r := gin.New()
		r.POST("/api/orders/accept", asIdentity("cat-1", "caterer"), h.Accept)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/orders/accept", jsonBody(t, gin.H{
			"orderId": "order-1", "itemIds": []string{"r9"},
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_GetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAuthHandler(mockUsers)

		acct := &user.Account{ID: "user-1", Username: "amina", Role: user.RoleUser}
		mockUsers.On("GetByID", mock.Anything, "user-1").Return(acct, nil).Once()

		r := gin.New()
		r.GET("/api/auth/user/:id", h.GetUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/auth/user/user-1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "amina")
	})

	t.Run("Missing User Maps To 404", func(t *testing.T) {
		mockUsers := new(MockUserService)
		h := NewAuthHandler(mockUsers)

		mockUsers.On("GetByID", mock.Anything, "ghost").Return(nil, user.ErrUserNotFound).Once()

		r := gin.New()
		r.GET("/api/auth/user/:id", h.GetUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/auth/user/ghost", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecipeHandler_ListByCaterer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRecipes := new(MockRecipeService)
	h := NewRecipeHandler(mockRecipes)

	catalog := []*recipe.Recipe{{ID: "r1", Name: "Nasi Goreng", OwnerID: "cat-1"}}
	mockRecipes.On("ListByOwner", mock.Anything, "cat-1").Return(catalog, nil).Once()

	r := gin.New()
	r.GET("/api/recipes/caterer/:id", h.ListByCaterer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/recipes/caterer/cat-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nasi Goreng")
	mockRecipes.AssertExpectations(t)
}

func TestMessageHandler_Reply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockMessages := new(MockMessageService)
		h := NewMessageHandler(mockMessages)

		reply := &message.Message{ID: "msg-2", RecipientID: "user-1", SenderType: message.SenderCaterer}
		mockMessages.On("Reply", mock.Anything, "cat-1", "msg-1", "Yes, Friday works").
			Return(reply, nil).Once()

		r := gin.New()
		r.POST("/api/messages/:id/reply", asIdentity("cat-1", "caterer"), h.Reply)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/messages/msg-1/reply", jsonBody(t, gin.H{
			"content": "Yes, Friday works",
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockMessages.AssertExpectations(t)
	})

	t.Run("Visitor Sender Maps To 403", func(t *testing.T) {
		mockMessages := new(MockMessageService)
		h := NewMessageHandler(mockMessages)

		mockMessages.On("Reply", mock.Anything, "cat-1", "msg-2", "Hello").
			Return(nil, message.ErrVisitorReply).Once()

		r := gin.New()
		r.POST("/api/messages/:id/reply", asIdentity("cat-1", "caterer"), h.Reply)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/messages/msg-2/reply", jsonBody(t, gin.H{
			"content": "Hello",
		}))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMessageHandler_InboxForUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockMessages := new(MockMessageService)
	h := NewMessageHandler(mockMessages)

	inbox := []*message.Message{{ID: "msg-2", RecipientID: "user-1", SenderType: message.SenderCaterer}}
	mockMessages.On("ListForRecipient", mock.Anything, "user-1").Return(inbox, nil).Once()

	r := gin.New()
	r.GET("/api/messages", asIdentity("user-1", "user"), h.Inbox)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/messages", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "msg-2")
	mockMessages.AssertExpectations(t)
}

func TestOrderHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockOrders := new(MockOrderService)
	h := NewOrderHandler(mockOrders)

	mockOrders.On("SetItemsStatus", mock.Anything, "cat-1", "order-1",
		[]string{"r1"}, order.ItemShipped).Return(1, nil).Once()

	r := gin.New()
	r.POST("/api/orders/status", asIdentity("cat-1", "caterer"), h.SetStatus)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/orders/status", jsonBody(t, gin.H{
		"orderId": "order-1", "itemIds": []string{"r1"}, "status": "shipped",
	}))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockOrders.AssertExpectations(t)
}
