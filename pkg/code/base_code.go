package code

import "net/http"

// Success codes // 成功码
var (
	Success        = NewSuss(0, http.StatusOK, lang{en: "Success", zh_cn: "成功"})
	SuccessCreate  = NewSuss(1, http.StatusCreated, lang{en: "Created", zh_cn: "创建成功"})
	SuccessDeleted = NewSuss(2, http.StatusOK, lang{en: "Successfully deleted", zh_cn: "删除成功"})
)

// Common errors // 通用错误
var (
	Failed                    = NewError(100001, http.StatusBadRequest, lang{en: "Something went wrong", zh_cn: "服务出错了"})
	ErrorInvalidParams        = NewError(100002, http.StatusBadRequest, lang{en: "Invalid parameters", zh_cn: "入参错误"})
	ErrorNotUserAuthToken     = NewError(100003, http.StatusUnauthorized, lang{en: "Authorization token not found", zh_cn: "未找到鉴权信息"})
	ErrorInvalidUserAuthToken = NewError(100004, http.StatusUnauthorized, lang{en: "Authorization token is invalid", zh_cn: "鉴权信息无效"})
	ErrorNotFoundAPI          = NewError(100005, http.StatusNotFound, lang{en: "API not found", zh_cn: "接口不存在"})
	ErrorServerInternal       = NewError(100006, http.StatusInternalServerError, lang{en: "Internal server error", zh_cn: "服务内部错误"})
)

// Content errors // 内容错误
var (
	ErrorContentNotFound       = NewError(200001, http.StatusNotFound, lang{en: "Content not found", zh_cn: "内容不存在"})
	ErrorNotContentOwner       = NewError(200002, http.StatusForbidden, lang{en: "You are not authorized to do this operation", zh_cn: "无权执行此操作"})
	ErrorUploadInvalidFileType = NewError(200003, http.StatusBadRequest, lang{en: "Invalid file type. Only JPG, PNG are allowed.", zh_cn: "文件类型无效，仅支持 JPG、PNG"})
	ErrorUploadFileTooLarge    = NewError(200004, http.StatusBadRequest, lang{en: "File is too large. Max 5MB allowed.", zh_cn: "文件过大，最大支持 5MB"})
	ErrorUploadFileMissing     = NewError(200005, http.StatusBadRequest, lang{en: "Image file is missing", zh_cn: "未找到上传文件"})
)

// Share link errors // 分享链接错误
var (
	ErrorLinkNotFound       = NewError(300001, http.StatusNotFound, lang{en: "Link not found", zh_cn: "链接不存在"})
	ErrorLinkAlreadyPresent = NewError(300002, http.StatusBadRequest, lang{en: "Link is already present", zh_cn: "链接已存在"})
	ErrorHashNotFound       = NewError(300003, http.StatusNotFound, lang{en: "Hash not found", zh_cn: "分享哈希不存在"})
)

// Storage errors // 存储错误
var (
	ErrorInvalidStorageType = NewError(400001, http.StatusBadRequest, lang{en: "Invalid storage type", zh_cn: "存储类型无效"})
)
