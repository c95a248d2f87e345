package service

// checkPage rejects non-positive page arguments and pages starting past the last record.
func checkPage(count int64, page, perPage int) error {
	if page <= 0 || perPage <= 0 {
		return ErrPageOutOfRange
	}
	// (page-1)*perPage >= count, phrased through pageCount so huge arguments cannot wrap.
	if int64(page) > pageCount(count, perPage) {
		return ErrPageOutOfRange
	}
	return nil
}

// pageCount returns ceil(count / perPage).
func pageCount(count int64, perPage int) int64 {
	if perPage <= 0 {
		return 0
	}
	per := int64(perPage)
	return (count + per - 1) / per
}
