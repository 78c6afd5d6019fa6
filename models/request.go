package models

// ConfRequest is the JSON body sent to the configuration authority.
// AppName selects which application's configuration is returned.
type ConfRequest struct {
	AppName string `json:"app_name"`
}

// SchemaVersion is the version of the [Conf] wire contract, sent in the
// [SchemaVersionHeader] request header.
const SchemaVersion = "1"

// SchemaVersionHeader is the request header carrying [SchemaVersion].
const SchemaVersionHeader = "X-Conf-Schema-Version"
