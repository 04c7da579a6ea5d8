package domain

// User-facing messages shared by the CLI and TUI.
const (
	MsgQueryIncomplete = "작물명과 병명을 모두 입력하세요."
	MsgNoResults       = "검색 결과 없음"
	MsgNoData          = "해당 작물의 데이터 파일이 없습니다."
	MsgNoLink          = "해당 작물에 대한 링크 정보가 없습니다."
	MsgSelectCrop      = "작물명을 선택하세요."
)
