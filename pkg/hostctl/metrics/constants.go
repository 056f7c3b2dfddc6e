package metrics

const (
	labelBlockID = "block_id"
	labelGuest   = "guest"
	labelSuccess = "success"
)
