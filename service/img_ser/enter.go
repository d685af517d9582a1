package img_ser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"plants/global"
	"plants/utils"

	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"
)

// Folder 图片归属目录
type Folder string

const (
	FolderPlant   Folder = "plant"
	FolderArticle Folder = "article"
)

// WhiteList 允许上传的图片格式
var WhiteList = []string{
	"jpg", "png", "jpeg", "ico",
	"tiff", "gif", "svg", "webp",
}

// Store 保存上传图片，返回可访问路径。
// 开启腾讯云COS时优先上云，失败退回本地存储
func Store(file *multipart.FileHeader, folder Folder) (string, error) {
	if err := validate(file); err != nil {
		return "", err
	}

	byteData, err := readFileContent(file)
	if err != nil {
		return "", err
	}

	// 雪花ID作为文件名避免重名
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	fileName := fmt.Sprintf("%d%s", id, ext)

	if global.Config.TencentCos.Open {
		cosPath, err := uploadToTencentCOS(fileName, byteData)
		if err == nil {
			return cosPath, nil
		}
		global.Log.Warn("上传到腾讯云失败，将使用本地存储", zap.String("error", err.Error()))
	}

	uploadDir := filepath.Join(global.Config.Upload.Path, string(folder))
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		global.Log.Error("创建目录失败", zap.String("error", err.Error()))
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	localPath := filepath.Join(uploadDir, fileName)
	if err := os.WriteFile(localPath, byteData, 0644); err != nil {
		global.Log.Error("写入文件失败", zap.String("error", err.Error()))
		return "", fmt.Errorf("保存文件失败: %w", err)
	}

	return "/" + filepath.ToSlash(localPath), nil
}

// Delete 删除已保存的图片，文件不存在不视为错误
func Delete(path string) error {
	if path == "" {
		return nil
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return deleteFromTencentCOS(path)
	}

	localPath := strings.TrimPrefix(path, "/")
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		global.Log.Error("删除本地文件失败",
			zap.String("path", path),
			zap.String("error", err.Error()),
		)
		return fmt.Errorf("删除文件失败: %w", err)
	}
	return nil
}

// validate 图片验证
func validate(file *multipart.FileHeader) error {
	if file == nil {
		return fmt.Errorf("文件不能为空")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" || !utils.InList(ext[1:], WhiteList) {
		return fmt.Errorf("不支持的文件格式: %s", ext)
	}

	sizeMB := float64(file.Size) / float64(1024*1024)
	if sizeMB >= float64(global.Config.Upload.Size) {
		return fmt.Errorf("图片大小超过设定,当前大小为:%.2fMB,设定大小为:%dMB",
			sizeMB, global.Config.Upload.Size)
	}
	return nil
}

func readFileContent(file *multipart.FileHeader) ([]byte, error) {
	fileObj, err := file.Open()
	if err != nil {
		global.Log.Error("打开文件失败", zap.String("error", err.Error()))
		return nil, fmt.Errorf("无法打开文件")
	}
	defer fileObj.Close()

	return io.ReadAll(fileObj)
}

func cosClient() *cos.Client {
	cosConfig := global.Config.TencentCos
	u, _ := url.Parse(cosConfig.BucketURL)
	b := &cos.BaseURL{BucketURL: u}
	return cos.NewClient(b, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cosConfig.SecretID,
			SecretKey: cosConfig.SecretKey,
		},
	})
}

// uploadToTencentCOS 上传文件到腾讯云COS
func uploadToTencentCOS(fileName string, data []byte) (string, error) {
	client := cosClient()
	r := bytes.NewReader(data)
	if _, err := client.Object.Put(context.Background(), fileName, r, nil); err != nil {
		return "", fmt.Errorf("上传到腾讯云失败: %w", err)
	}
	bucketURL := strings.TrimRight(global.Config.TencentCos.BucketURL, "/")
	return fmt.Sprintf("%s/%s", bucketURL, fileName), nil
}

// deleteFromTencentCOS 删除腾讯云COS中的文件，对象不存在不报错
func deleteFromTencentCOS(path string) error {
	cosConfig := global.Config.TencentCos
	objectKey := strings.TrimPrefix(path, strings.TrimRight(cosConfig.BucketURL, "/")+"/")
	if objectKey == "" || objectKey == path {
		global.Log.Error("无法从路径中提取对象键", zap.String("path", path))
		return fmt.Errorf("无效的文件路径")
	}

	client := cosClient()
	if _, err := client.Object.Delete(context.Background(), objectKey); err != nil {
		if strings.Contains(err.Error(), "NoSuchKey") {
			global.Log.Warn("腾讯云文件不存在", zap.String("path", path))
			return nil
		}
		global.Log.Error("删除腾讯云文件失败",
			zap.String("path", path),
			zap.String("objectKey", objectKey),
			zap.String("error", err.Error()),
		)
		return fmt.Errorf("删除腾讯云文件失败: %w", err)
	}
	return nil
}
