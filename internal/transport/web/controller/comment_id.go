package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func commentIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["comment_id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
