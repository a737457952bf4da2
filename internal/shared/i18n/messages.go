package i18n

// messages maps an error code to its user facing text per language.
var messages = map[string]struct{ en, ja string }{
	// generic
	"VALIDATION_FAILED":      {"The request contains invalid values.", "入力値にエラーがあります。"},
	"REQUEST_MALFORMED":      {"The request body is malformed.", "リクエストの形式が不正です。"},
	"ROUTE_NOT_FOUND":        {"The requested resource was not found.", "リクエストされたリソースが見つかりません。"},
	"METHOD_NOT_ALLOWED":     {"The HTTP method is not allowed.", "許可されていないHTTPメソッドです。"},
	"UNSUPPORTED_MEDIA_TYPE": {"The media type is not supported.", "サポートされていないメディアタイプです。"},
	"INTERNAL_ERROR":         {"An internal server error occurred.", "サーバーエラーが発生しました。"},
	"SERVICE_UNAVAILABLE":    {"The service is temporarily unavailable.", "サービスが一時的に利用できません。"},
	"FIELD_REQUIRED":         {"This field is required.", "必須項目です。"},
	"FIELD_INVALID":          {"This field is invalid.", "入力値が不正です。"},

	// author
	"AUTHOR_INVALID_NAME":        {"Name must be between 1 and 255 characters.", "名前は1文字以上、255文字以下でなければなりません。"},
	"AUTHOR_INVALID_BIRTH_DATE":  {"Date of birth must be in the past.", "生年月日は過去の日付である必要があります。"},
	"AUTHOR_NOT_FOUND":           {"The specified author does not exist.", "指定された著者は存在しません。"},
	"AUTHOR_NAME_REQUIRED":       {"Name is required.", "名前は必須です。"},
	"AUTHOR_NAME_TOO_LONG":       {"Name must be 255 characters or fewer.", "名前は255文字以下でなければなりません。"},
	"AUTHOR_BIRTH_DATE_FORMAT":   {"Date of birth must be formatted as YYYY-MM-DD.", "生年月日はYYYY-MM-DD形式で指定してください。"},
	"AUTHOR_BIRTH_DATE_REQUIRED": {"Date of birth is required.", "生年月日は必須です。"},

	// book
	"BOOK_INVALID_TITLE":      {"Title must be between 1 and 255 characters.", "書籍のタイトルは1文字以上、255文字以下でなければなりません。"},
	"BOOK_PRICE_NEGATIVE":     {"Price must be 0 or more.", "書籍の価格は0円以上でなければなりません。"},
	"BOOK_PRICE_TOO_HIGH":     {"Price must be 1,000,000 or less.", "書籍の価格は100万円以下でなければなりません。"},
	"BOOK_AUTHORS_EMPTY":      {"A book needs at least one author.", "書籍には少なくとも1人の著者が必要です。"},
	"BOOK_AUTHORS_DUPLICATED": {"Author IDs must not be duplicated.", "書籍の著者IDは重複してはいけません。"},
	"BOOK_INVALID_AUTHOR_ID":  {"An author ID has an invalid format.", "著者IDの形式が不正です。"},
	"BOOK_AUTHORS_MISSING":    {"Some of the specified authors do not exist.", "指定された著者の一部が存在しません。"},
	"BOOK_STATUS_DOWNGRADE":   {"A published book cannot be unpublished.", "出版済みの書籍を非公開にすることはできません。"},
	"BOOK_INVALID_STATUS":     {"Status must be UNPUBLISHED or PUBLISHED.", "出版状況はUNPUBLISHEDまたはPUBLISHEDで指定してください。"},
	"BOOK_NOT_FOUND":          {"The specified book does not exist.", "指定された書籍は存在しません。"},
	"BOOK_TITLE_REQUIRED":     {"Title is required.", "タイトルは必須です。"},
	"BOOK_TITLE_TOO_LONG":     {"Title must be 255 characters or fewer.", "タイトルは255文字以下でなければなりません。"},
	"BOOK_PRICE_REQUIRED":     {"Price is required.", "価格は必須です。"},
	"BOOK_PRICE_MIN":          {"Price must be 0 or more.", "価格は0以上である必要があります。"},
	"BOOK_AUTHORS_REQUIRED":   {"At least one author is required.", "著者は最低1人必要です。"},
	"BOOK_STATUS_REQUIRED":    {"Status is required.", "出版状況は必須です。"},
}
