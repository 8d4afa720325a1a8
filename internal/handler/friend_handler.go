package handler

import (
	"net/http"

	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendshipResponse is a friendship edge after a state change.
type FriendshipResponse struct {
	ID       uint   `json:"id" example:"12"`
	UserID   uint   `json:"user_id" example:"1"`
	FriendID uint   `json:"friend_id" example:"2"`
	Status   string `json:"status" example:"pending"`
}

// region --- Friendship Handlers ---

// ListFriends godoc
// @Summary      List friends
// @Description  Accepted friendships in either direction.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.FriendView
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func ListFriends(c *gin.Context) {
	friends, err := service.NewFriendshipService(database.DB).Friends(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// ListIncomingRequests godoc
// @Summary      Incoming friend requests
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.RequestView
// @Router       /friends/requests [get]
func ListIncomingRequests(c *gin.Context) {
	requests, err := service.NewFriendshipService(database.DB).IncomingRequests(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ListSentRequests godoc
// @Summary      Sent friend requests
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.RequestView
// @Router       /friends/requests/sent [get]
func ListSentRequests(c *gin.Context) {
	requests, err := service.NewFriendshipService(database.DB).OutgoingRequests(c.Request.Context(), auth.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// SendFriendRequest godoc
// @Summary      Send a friend request
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body service.FriendRequestInput true "Target"
// @Success      201  {object}  FriendshipResponse
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      409  {object}  ErrorResponse "Already friends or pending"
// @Router       /friends/request [post]
func SendFriendRequest(c *gin.Context) {
	var input service.FriendRequestInput
	if !bindJSON(c, &input) {
		return
	}
	edge, err := service.NewFriendshipService(database.DB).SendRequest(c.Request.Context(), auth.MustUserID(c), input.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, FriendshipResponse{ID: edge.ID, UserID: edge.UserID, FriendID: edge.FriendID, Status: string(edge.Status)})
}

// AcceptFriendRequest godoc
// @Summary      Accept a friend request
// @Description  Only the recipient of a pending request may accept it.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  FriendshipResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /friends/accept/{id} [post]
func AcceptFriendRequest(c *gin.Context) {
	requestID, ok := idParam(c, "id")
	if !ok {
		return
	}
	edge, err := service.NewFriendshipService(database.DB).Accept(c.Request.Context(), auth.MustUserID(c), requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FriendshipResponse{ID: edge.ID, UserID: edge.UserID, FriendID: edge.FriendID, Status: string(edge.Status)})
}

// RemoveFriend godoc
// @Summary      Decline, cancel or unfriend
// @Description  Deletes the friendship or request. Either party may call it.
// @Tags         friends
// @Security     BearerAuth
// @Param        id   path  int  true  "Friendship or request ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /friends/{id} [delete]
func RemoveFriend(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := service.NewFriendshipService(database.DB).Remove(c.Request.Context(), auth.MustUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchUsers godoc
// @Summary      Search users
// @Description  Username or display name substring, at most 20 results, excluding the caller.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search text"
// @Success      200  {array}   service.SearchResult
// @Router       /friends/search [get]
func SearchUsers(c *gin.Context) {
	results, err := service.NewFriendshipService(database.DB).Search(c.Request.Context(), auth.MustUserID(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// endregion
