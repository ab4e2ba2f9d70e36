package controllers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/azharhussaincs/prohomezmain/initializers"
	"github.com/azharhussaincs/prohomezmain/models"
	"github.com/azharhussaincs/prohomezmain/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/sethvargo/go-password/password"
)

const maxUploadFiles = 10

func UploadImages(c *fiber.Ctx) error {
	vendor := c.Locals("vendor").(models.Vendor)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "failed to read form.",
			},
		}, "application/vnd.api+json")
	}

	files := form.File["image"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "400",
			"status": "BAD_REQUEST",
			"error": fiber.Map{
				"message": "No files uploaded.",
			},
		}, "application/vnd.api+json")
	}
	if len(files) > maxUploadFiles {
		files = files[:maxUploadFiles]
	}

	for _, file := range files {
		if !validation.CheckFileMime(file.Header["Content-Type"][0]) || !validation.CheckFileSize(uint64(file.Size), 5) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":   "400",
				"status": "BAD_REQUEST",
				"errors": fiber.Map{
					"image": "Unsupported format or the image is too large.",
				},
			}, "application/vnd.api+json")
		}
	}

	var sliceFiles []string
	for _, file := range files {
		res, err := password.Generate(16, 16, 0, false, true)
		if err != nil {
			log.Println(err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "unable to create random name.",
				},
			}, "application/vnd.api+json")
		}

		filenameList := strings.Split(file.Filename, ".")
		ext := filenameList[len(filenameList)-1]
		filename := strconv.FormatInt(time.Now().Unix(), 10) + "_" + res + "." + ext
		sliceFiles = append(sliceFiles, filename)

		if err := c.SaveFile(file, GetDir(fmt.Sprintf("/public/images/%s", filename))); err != nil {
			log.Println(err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "Unable to save image.",
				},
			}, "application/vnd.api+json")
		}
	}

	tx := initializers.DB.Begin()
	for _, filename := range sliceFiles {
		if result := tx.Exec("INSERT INTO media(image, store_id, date) VALUES (?, ?, NOW());", filename, vendor.StoreID); result.Error != nil {
			tx.Rollback()
			if ok := RemoveFile(sliceFiles); !ok {
				log.Println("failed to remove uploaded images")
			}
			log.Println(result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":   "500",
				"status": "INTERNAL_SERVER_ERROR",
				"error": fiber.Map{
					"message": "Failed to upload images.",
				},
			}, "application/vnd.api+json")
		}
	}
	tx.Commit()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":   "201",
		"status": "CREATED",
		"data": fiber.Map{
			"images": sliceFiles,
		},
	}, "application/vnd.api+json")
}

func GetAllImages(c *fiber.Ctx) error {
	vendor := c.Locals("vendor").(models.Vendor)

	var media []models.Media
	var err error
	if vendor.IsAdmin {
		err = initializers.DB.Raw("SELECT id, CONCAT(CAST(? AS TEXT), image) AS image, store_id, date FROM media ORDER BY date DESC", fmt.Sprintf("%s/img/", c.BaseURL())).Scan(&media).Error
	} else {
		err = initializers.DB.Raw("SELECT id, CONCAT(CAST(? AS TEXT), image) AS image, store_id, date FROM media WHERE store_id=? ORDER BY date DESC", fmt.Sprintf("%s/img/", c.BaseURL()), vendor.StoreID).Scan(&media).Error
	}
	if err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":   "500",
			"status": "INTERNAL_SERVER_ERROR",
			"error": fiber.Map{
				"message": "Error fetching media.",
			},
		}, "application/vnd.api+json")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":   "200",
		"status": "OK",
		"data":   media,
	}, "application/vnd.api+json")
}

func GetImg(c *fiber.Ctx) error {
	fileName := c.Params("name")

	return c.SendFile(GetDir(filepath.Join("/public/images/", fileName)))
}

func GetDir(path string) string {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		log.Fatal(err)
	}

	return filepath.Join(dir, path)
}

func RemoveFile(files []string) bool {
	for _, file := range files {
		if err := os.Remove(GetDir(fmt.Sprintf("/public/images/%s", file))); err != nil {
			return false
		}
	}
	return true
}
