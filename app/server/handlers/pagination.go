package handlers

import "strconv"

func (a *App) parsePagination(pageStr string, limitStr string) (bool, int, int) {
	page, pageErr := strconv.Atoi(pageStr)
	limit, limitErr := strconv.Atoi(limitStr)

	if pageErr == nil && page == 0 && limitErr == nil && limit == 0 {
		// 特殊参数：展示全部
		return true, -1, -1
	}

	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制不变
	if pageErr != nil || page < 1 {
		page = 1
	}

	if limitErr != nil || limit <= 0 {
		limit = 10
	}

	return false, page - 1, limit
}
