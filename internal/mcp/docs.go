package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `farmrec keeps a farm's crop, animal and activity records.

Every tool acts as the account that started the server; changes are saved
immediately and written to the change journal under that username.

- Browse with list_crops / list_animals / list_activities (optional "search"
  keyword, accent and case insensitive) and get_* by id.
- add_* needs at least name and type. update_* takes {id, changes} and keeps
  fields that are not in changes. delete_* removes by id.
- farm_stats returns record counts; recent_history shows who changed what.
- export_report writes an xlsx report (admins only) and returns its path.

More: farmrec://docs/records`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "farmrec://docs/records",
		Name:        "docs_records",
		Title:       "Farm record fields",
		Description: "Fields of each record kind and the report columns they map to.",
		Content: `# Farm record fields

## Crops (report: crops)

| field | report column |
|-------|---------------|
| id | ID |
| name | Tên Cây |
| type | Loại Cây |
| planting_date | Ngày Trồng |
| area | Diện Tích (ha) |
| status | Trạng Thái |
| notes | Ghi Chú |

## Animals (report: animals)

| field | report column |
|-------|---------------|
| id | ID |
| name | Tên Vật Nuôi |
| type | Loại |
| entry_date | Ngày Nhập |
| quantity | Số Lượng (whole number, not negative) |
| status | Trạng Thái |
| notes | Ghi Chú |

## Activities (report: activities)

| field | report column |
|-------|---------------|
| id | ID |
| name | Tên Hoạt Động |
| type | Loại |
| date | Ngày |
| responsible | Người Phụ Trách |
| status | Trạng Thái |
| description | Mô Tả |

Ids are assigned by the server: one more than the highest id in the
collection. Deleted ids leave gaps.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
